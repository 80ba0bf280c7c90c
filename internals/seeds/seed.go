// internals/seeds/seed.go
package seeds

import (
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	cModel "emojiku_backend/internals/features/courses/model"
	eModel "emojiku_backend/internals/features/emojis/model"
	uModel "emojiku_backend/internals/features/users/user/model"
)

type userSeed struct {
	UserName string
	FullName string
	Email    string
	Password string
	Role     string
}

var demoUsers = []userSeed{
	{"admin", "Admin Emojiku", "admin@emojiku.local", "admin12345", "admin"},
	{"bu_siti", "Siti Rahma", "siti@emojiku.local", "teacher12345", "teacher"},
	{"andi", "Andi Pratama", "andi@emojiku.local", "student12345", "student"},
	{"rina", "Rina Maulida", "rina@emojiku.local", "student12345", "student"},
}

// SeedAll mengisi data demo: 4 user (admin/teacher/2 student), satu course
// yang diampu teacher, kedua student terdaftar, plus beberapa emoji contoh.
// Idempotent: data yang sudah ada dilewati.
func SeedAll(db *gorm.DB) {
	users := seedUsers(db)
	course := seedCourse(db, users["bu_siti"])
	seedEnrollments(db, course, users["andi"], users["rina"])
	seedEmojis(db, course, users["andi"], users["rina"])
}

func seedUsers(db *gorm.DB) map[string]uuid.UUID {
	ids := make(map[string]uuid.UUID, len(demoUsers))

	for _, data := range demoUsers {
		var existing uModel.UserModel
		if err := db.Where("email = ?", data.Email).First(&existing).Error; err == nil {
			log.Printf("ℹ️ User '%s' sudah ada, dilewati.", data.Email)
			ids[data.UserName] = existing.ID
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("❌ Gagal hash password untuk '%s': %v", data.Email, err)
			continue
		}

		newUser := uModel.UserModel{
			ID:       uuid.New(),
			UserName: data.UserName,
			FullName: data.FullName,
			Email:    data.Email,
			Password: string(hashed),
			Role:     data.Role,
			IsActive: true,
		}
		if err := db.Create(&newUser).Error; err != nil {
			log.Printf("❌ Gagal insert user '%s': %v", data.Email, err)
			continue
		}
		log.Printf("✅ Berhasil insert user '%s'", data.Email)
		ids[data.UserName] = newUser.ID
	}
	return ids
}

func seedCourse(db *gorm.DB, teacherID uuid.UUID) uuid.UUID {
	var existing cModel.CourseModel
	if err := db.Where("course_name = ?", "Matematika Dasar").First(&existing).Error; err == nil {
		log.Println("ℹ️ Course demo sudah ada, dilewati.")
		return existing.CourseID
	}

	course := cModel.CourseModel{
		CourseID:        uuid.New(),
		CourseName:      "Matematika Dasar",
		CourseTeacherID: &teacherID,
		CourseTags:      []string{"matematika", "semester-1"},
		CourseIsActive:  true,
	}
	if err := db.Create(&course).Error; err != nil {
		log.Printf("❌ Gagal insert course demo: %v", err)
		return uuid.Nil
	}
	log.Println("✅ Berhasil insert course demo")
	return course.CourseID
}

func seedEnrollments(db *gorm.DB, courseID uuid.UUID, studentIDs ...uuid.UUID) {
	if courseID == uuid.Nil {
		return
	}
	for _, sid := range studentIDs {
		var count int64
		db.Model(&cModel.CourseEnrollmentModel{}).
			Where("enrollment_course_id = ? AND enrollment_student_id = ?", courseID, sid).
			Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&cModel.CourseEnrollmentModel{
			EnrollmentStudentID: sid,
			EnrollmentCourseID:  courseID,
		}).Error; err != nil {
			log.Printf("❌ Gagal enroll student %s: %v", sid, err)
		}
	}
	log.Println("✅ Enrollment demo siap")
}

func seedEmojis(db *gorm.DB, courseID uuid.UUID, studentIDs ...uuid.UUID) {
	if courseID == uuid.Nil || len(studentIDs) == 0 {
		return
	}

	var count int64
	db.Model(&eModel.EmojiModel{}).Where("emoji_course_id = ?", courseID).Count(&count)
	if count > 0 {
		log.Println("ℹ️ Emoji demo sudah ada, dilewati.")
		return
	}

	now := time.Now().UTC()
	types := []int{2, 2, 5, 7, 1, 10}
	for i, tp := range types {
		if err := db.Create(&eModel.EmojiModel{
			EmojiStudentID: studentIDs[i%len(studentIDs)],
			EmojiCourseID:  courseID,
			EmojiType:      tp,
			EmojiSentAt:    now.Add(-time.Duration(i*2) * time.Hour),
		}).Error; err != nil {
			log.Printf("❌ Gagal insert emoji demo: %v", err)
		}
	}
	log.Println("✅ Emoji demo siap")
}
