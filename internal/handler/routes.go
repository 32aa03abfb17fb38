package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appErrors "github.com/escola-hub/escola-api/pkg/errors"
)

// RegisterRoutes wires the resource handlers onto the router.
func RegisterRoutes(r gin.IRouter, classes *ClassHandler, students *StudentHandler, teachers *TeacherHandler) {
	r.GET("/turmas", classes.List)
	r.GET("/turmas/:id", classes.Get)
	r.POST("/turmas", classes.Create)
	r.PUT("/turmas/:id", classes.Update)
	r.DELETE("/turmas/:id", classes.Delete)

	r.GET("/alunos", students.List)
	r.GET("/alunos/:id", students.Get)
	r.POST("/alunos", students.Create)
	r.PUT("/alunos/:id", students.Update)
	r.DELETE("/alunos/:id", students.Delete)

	r.GET("/professores", teachers.List)
	r.GET("/professores/:id", teachers.Get)
	r.POST("/professores", teachers.Create)
	r.PUT("/professores/:id", teachers.Update)
	r.DELETE("/professores/:id", teachers.Delete)
}

func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, appErrors.Clone(appErrors.ErrValidation, "invalid id")
	}
	return id, nil
}
