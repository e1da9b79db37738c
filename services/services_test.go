package services_test

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"unireg/models"
	"unireg/repository"
	"unireg/services"
)

// testEnv wires the services against an in-memory sqlite database so the
// unique indexes behave like the real store.
type testEnv struct {
	db          *gorm.DB
	catalog     *services.CatalogService
	ledger      *services.RegistrationService
	reports     *services.ReportsService
	enrollments *repository.EnrollmentRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	// A named shared-cache database so every pooled connection sees the
	// same data, scoped to the test to keep tests independent.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(&models.User{}, &models.Course{}, &models.Enrollment{}, &models.PasswordReset{})
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	courseRepo := repository.NewCourseRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	userRepo := repository.NewUserRepository(db)

	return &testEnv{
		db:          db,
		catalog:     services.NewCatalogService(courseRepo, enrollmentRepo),
		ledger:      services.NewRegistrationService(enrollmentRepo, courseRepo),
		reports:     services.NewReportsService(courseRepo, enrollmentRepo, userRepo),
		enrollments: enrollmentRepo,
	}
}

func (env *testEnv) createStudent(t *testing.T, name, email string) *models.User {
	t.Helper()
	user := models.User{
		Name:     name,
		Email:    email,
		Password: "hashed",
		Role:     models.RoleStudent,
	}
	if err := env.db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create student: %v", err)
	}
	return &user
}

func (env *testEnv) createAdmin(t *testing.T, name, email string) *models.User {
	t.Helper()
	user := models.User{
		Name:     name,
		Email:    email,
		Password: "hashed",
		Role:     models.RoleAdmin,
	}
	if err := env.db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create admin: %v", err)
	}
	return &user
}

func courseInput(code string) services.CourseInput {
	return services.CourseInput{
		Code:     code,
		Name:     "Introduction to " + code,
		NameAr:   "مقدمة في " + code,
		Credits:  3,
		Semester: "Fall 2024",
	}
}

func (env *testEnv) createCourse(t *testing.T, code string) *models.Course {
	t.Helper()
	course, err := env.catalog.CreateCourse(courseInput(code))
	if err != nil {
		t.Fatalf("failed to create course %s: %v", code, err)
	}
	return course
}
