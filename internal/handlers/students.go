package handlers

import (
	"net/http"
	"strconv"

	"studentregistry/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	msgStudentAdded   = "Student added successfully."
	msgStudentUpdated = "Student updated successfully."
	msgStudentDeleted = "Student deleted successfully."
	msgAllFieldsReq   = "All fields are required."
	msgBadStudentID   = "Invalid student id."
)

// studentRequest is the write payload for create and update.
// GPA is a pointer so an absent field is distinguishable from 0.0.
type studentRequest struct {
	Name  string   `json:"name" binding:"required"`
	Email string   `json:"email" binding:"required"`
	Major string   `json:"major" binding:"required"`
	GPA   *float64 `json:"gpa" binding:"required"`
}

func (r studentRequest) toInput() service.StudentInput {
	return service.StudentInput{
		Name:  r.Name,
		Email: r.Email,
		Major: r.Major,
		GPA:   *r.GPA,
	}
}

// actorName returns the authenticated username for the audit trail.
func actorName(c *gin.Context) string {
	if claims := currentClaims(c); claims != nil {
		return claims.Username
	}
	return ""
}

// pathID parses the :id parameter; writes a 400 and returns false on garbage.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": msgBadStudentID})
		return 0, false
	}
	return id, true
}

// @Summary      List students
// @Tags         students
// @Produce      json
// @Success      200  {array}   models.Student
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/students [get]
// @Security     BearerAuth
func (h *Handler) listStudents(c *gin.Context) {
	students, err := h.services.Students.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "students_list_failed")
		return
	}
	c.JSON(http.StatusOK, students)
}

// @Summary      Get student by id
// @Tags         students
// @Produce      json
// @Param        id   path      int  true  "Student id"
// @Success      200  {object}  models.Student
// @Failure      404  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/students/{id} [get]
// @Security     BearerAuth
func (h *Handler) getStudent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	student, err := h.services.Students.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "students_get_failed")
		return
	}
	c.JSON(http.StatusOK, student)
}

// @Summary      Add student
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        body  body  studentRequest  true  "Student fields"
// @Success      201   {object}  map[string]interface{}  "id, message"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/students [post]
// @Security     BearerAuth
func (h *Handler) createStudent(c *gin.Context) {
	var req studentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": msgAllFieldsReq})
		return
	}

	id, err := h.services.Students.Create(c.Request.Context(), actorName(c), req.toInput())
	if err != nil {
		h.respondError(c, err, "students_create_failed")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "message": msgStudentAdded})
}

// @Summary      Update student
// @Description  Full replace: every field is required.
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        id    path  int             true  "Student id"
// @Param        body  body  studentRequest  true  "Student fields"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/students/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateStudent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req studentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": msgAllFieldsReq})
		return
	}

	if err := h.services.Students.Update(c.Request.Context(), actorName(c), id, req.toInput()); err != nil {
		h.respondError(c, err, "students_update_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msgStudentUpdated})
}

// @Summary      Delete student
// @Tags         students
// @Produce      json
// @Param        id   path      int  true  "Student id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/students/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteStudent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.services.Students.Delete(c.Request.Context(), actorName(c), id); err != nil {
		h.respondError(c, err, "students_delete_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msgStudentDeleted})
}
