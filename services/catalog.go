package services

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"unireg/models"
)

var validate = validator.New()

// CourseInput is the payload for creating or updating a course.
type CourseInput struct {
	Code          string `json:"code" validate:"required,max=20"`
	Name          string `json:"name" validate:"required,max=200"`
	NameAr        string `json:"name_ar" validate:"required,max=200"`
	Description   string `json:"description" validate:"max=1000"`
	DescriptionAr string `json:"description_ar" validate:"max=1000"`
	Credits       int    `json:"credits" validate:"required,min=1,max=6"`
	Semester      string `json:"semester" validate:"required,max=50"`
	IsActive      *bool  `json:"is_active"`
}

func (in *CourseInput) normalize() {
	in.Code = strings.TrimSpace(in.Code)
	in.Name = strings.TrimSpace(in.Name)
	in.NameAr = strings.TrimSpace(in.NameAr)
	in.Semester = strings.TrimSpace(in.Semester)
}

func (in *CourseInput) active() bool {
	if in.IsActive == nil {
		return true
	}
	return *in.IsActive
}

// ValidateCourseInput checks the field constraints and returns a
// *ValidationError describing every violation, or nil.
func ValidateCourseInput(in *CourseInput) error {
	in.normalize()

	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[courseFieldName(fe.Field())] = courseFieldMessage(fe)
	}
	return &ValidationError{Fields: fields}
}

func courseFieldName(structField string) string {
	switch structField {
	case "Code":
		return "code"
	case "Name":
		return "name"
	case "NameAr":
		return "name_ar"
	case "Description":
		return "description"
	case "DescriptionAr":
		return "description_ar"
	case "Credits":
		return "credits"
	case "Semester":
		return "semester"
	}
	return strings.ToLower(structField)
}

func courseFieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		if fe.Field() == "Credits" {
			return "must be at most " + fe.Param()
		}
		return "must be at most " + fe.Param() + " characters"
	case "min":
		return "must be at least " + fe.Param()
	}
	return "is invalid"
}

// CatalogService manages the course catalog: CRUD plus search. It owns
// the course-code uniqueness rule and protects enrolled courses from
// deletion.
type CatalogService struct {
	courses     CourseStore
	enrollments EnrollmentStore
}

func NewCatalogService(courses CourseStore, enrollments EnrollmentStore) *CatalogService {
	return &CatalogService{courses: courses, enrollments: enrollments}
}

// ListCourses returns all courses, or those matching the search term,
// ordered by course code.
func (s *CatalogService) ListCourses(searchTerm string) ([]models.Course, error) {
	return s.courses.Search(searchTerm)
}

func (s *CatalogService) GetCourse(id uint) (*models.Course, error) {
	course, err := s.courses.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return course, err
}

// CreateCourse validates the input, rejects duplicate course codes and
// persists the new course.
func (s *CatalogService) CreateCourse(in CourseInput) (*models.Course, error) {
	if err := ValidateCourseInput(&in); err != nil {
		return nil, err
	}

	exists, err := s.courses.CodeExists(in.Code, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateCourseCode
	}

	course := models.Course{
		Code:          in.Code,
		Name:          in.Name,
		NameAr:        in.NameAr,
		Description:   in.Description,
		DescriptionAr: in.DescriptionAr,
		Credits:       in.Credits,
		Semester:      in.Semester,
		IsActive:      in.active(),
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.courses.Create(&course); err != nil {
		// Two creates racing past the existence check: the unique index
		// on code decides, and the loser sees the same error as above.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateCourseCode
		}
		return nil, err
	}
	return &course, nil
}

// UpdateCourse overwrites all mutable fields of an existing course.
func (s *CatalogService) UpdateCourse(id uint, in CourseInput) (*models.Course, error) {
	if err := ValidateCourseInput(&in); err != nil {
		return nil, err
	}

	course, err := s.courses.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	// The code may collide with any course except this one.
	exists, err := s.courses.CodeExists(in.Code, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateCourseCode
	}

	course.Code = in.Code
	course.Name = in.Name
	course.NameAr = in.NameAr
	course.Description = in.Description
	course.DescriptionAr = in.DescriptionAr
	course.Credits = in.Credits
	course.Semester = in.Semester
	course.IsActive = in.active()

	if err := s.courses.Update(course); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateCourseCode
		}
		return nil, err
	}
	return course, nil
}

// DeleteCourse removes a course that no enrollment references.
func (s *CatalogService) DeleteCourse(id uint) error {
	if _, err := s.GetCourse(id); err != nil {
		return err
	}

	has, err := s.enrollments.HasForCourse(id)
	if err != nil {
		return err
	}
	if has {
		return ErrHasRegistrations
	}

	return s.courses.Delete(id)
}
