package services

import "unireg/models"

// The services depend on these store interfaces rather than on GORM
// repositories directly; the concrete implementations live in the
// repository package and are wired in at startup. Stores surface
// gorm.ErrRecordNotFound and gorm.ErrDuplicatedKey unchanged, the
// services translate them into domain errors.

type CourseStore interface {
	List() ([]models.Course, error)
	Search(term string) ([]models.Course, error)
	ListActive() ([]models.Course, error)
	GetByID(id uint) (*models.Course, error)
	CodeExists(code string, excludeID uint) (bool, error)
	Create(course *models.Course) error
	Update(course *models.Course) error
	Delete(id uint) error
}

type EnrollmentStore interface {
	GetByID(id uint) (*models.Enrollment, error)
	ByStudent(studentID uint) ([]models.Enrollment, error)
	ByCourse(courseID uint) ([]models.Enrollment, error)
	Exists(studentID, courseID uint) (bool, error)
	HasForCourse(courseID uint) (bool, error)
	CountByCourse(courseID uint) (int64, error)
	CountByStudent(studentID uint) (int64, error)
	Create(enrollment *models.Enrollment) error
	Delete(id uint) error
}

type UserStore interface {
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	ListByRole(role string) ([]models.User, error)
	Create(user *models.User) error
	UpdatePassword(id uint, hashed string) error
}
