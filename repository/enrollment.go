package repository

import (
	"gorm.io/gorm"

	"unireg/models"
)

// EnrollmentRepository is the data-access layer for student-course links.
type EnrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

func (r *EnrollmentRepository) GetByID(id uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := r.db.Preload("Student").Preload("Course").First(&enrollment, id).Error
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// ByStudent returns a student's enrollments, newest first.
func (r *EnrollmentRepository) ByStudent(studentID uint) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := r.db.
		Preload("Course").
		Where("student_id = ?", studentID).
		Order("registered_at desc").
		Find(&enrollments).Error
	return enrollments, err
}

// ByCourse returns a course's enrollments ordered by student name.
func (r *EnrollmentRepository) ByCourse(courseID uint) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := r.db.
		Preload("Student").
		Joins("JOIN users ON users.id = enrollments.student_id").
		Where("enrollments.course_id = ?", courseID).
		Order("users.name asc").
		Find(&enrollments).Error
	return enrollments, err
}

func (r *EnrollmentRepository) Exists(studentID, courseID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Enrollment{}).
		Where("student_id = ? AND course_id = ?", studentID, courseID).
		Count(&count).Error
	return count > 0, err
}

// HasForCourse reports whether any enrollment references the course.
func (r *EnrollmentRepository) HasForCourse(courseID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Enrollment{}).
		Where("course_id = ?", courseID).
		Count(&count).Error
	return count > 0, err
}

func (r *EnrollmentRepository) CountByCourse(courseID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Enrollment{}).
		Where("course_id = ?", courseID).
		Count(&count).Error
	return count, err
}

func (r *EnrollmentRepository) CountByStudent(studentID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Enrollment{}).
		Where("student_id = ?", studentID).
		Count(&count).Error
	return count, err
}

func (r *EnrollmentRepository) Create(enrollment *models.Enrollment) error {
	return r.db.Create(enrollment).Error
}

func (r *EnrollmentRepository) Delete(id uint) error {
	return r.db.Delete(&models.Enrollment{}, id).Error
}
