package repository

import (
	"strings"

	"gorm.io/gorm"

	"unireg/models"
)

// CourseRepository is the data-access layer for courses. It holds no
// business rules; callers interpret gorm.ErrRecordNotFound and
// gorm.ErrDuplicatedKey themselves.
type CourseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// List returns every course ordered by course code.
func (r *CourseRepository) List() ([]models.Course, error) {
	var courses []models.Course
	err := r.db.Order("code asc").Find(&courses).Error
	return courses, err
}

// Search filters courses by a case-insensitive substring on code, English
// name and semester. The Arabic name is matched as-is, lowercasing has no
// meaning there.
func (r *CourseRepository) Search(term string) ([]models.Course, error) {
	if strings.TrimSpace(term) == "" {
		return r.List()
	}

	pattern := "%" + strings.ToLower(term) + "%"
	var courses []models.Course
	err := r.db.
		Where("LOWER(code) LIKE ? OR LOWER(name) LIKE ? OR name_ar LIKE ? OR LOWER(semester) LIKE ?",
			pattern, pattern, "%"+term+"%", pattern).
		Order("code asc").
		Find(&courses).Error
	return courses, err
}

// ListActive returns courses with the active flag set, ordered by code.
func (r *CourseRepository) ListActive() ([]models.Course, error) {
	var courses []models.Course
	err := r.db.Where("is_active = ?", true).Order("code asc").Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) GetByID(id uint) (*models.Course, error) {
	var course models.Course
	if err := r.db.First(&course, id).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

// CodeExists reports whether another course already uses the given code.
// excludeID skips one course so updates don't collide with themselves.
func (r *CourseRepository) CodeExists(code string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.Model(&models.Course{}).Where("code = ?", code)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CourseRepository) Create(course *models.Course) error {
	return r.db.Create(course).Error
}

func (r *CourseRepository) Update(course *models.Course) error {
	return r.db.Save(course).Error
}

func (r *CourseRepository) Delete(id uint) error {
	return r.db.Delete(&models.Course{}, id).Error
}
