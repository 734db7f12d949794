package database

import (
	"log"

	"learnex/models"
)

// SeedCourses inserts the sample catalog when the courses table is empty.
// Runs at startup; a non-empty catalog is left untouched.
func SeedCourses() {
	var count int64
	if err := Database.Db.Model(&models.Course{}).Count(&count).Error; err != nil {
		log.Printf("Error counting courses for seed: %v", err)
		return
	}
	if count > 0 {
		return
	}

	sampleCourses := []models.Course{
		{
			Title:       "Full Stack Web Development",
			Description: "Learn to build complete web applications from frontend to backend",
			Instructor:  "Sarah Johnson",
			Duration:    "12 weeks",
			Level:       "Intermediate",
			Price:       299,
			ImageURL:    "https://images.pexels.com/photos/574071/pexels-photo-574071.jpeg?auto=compress&cs=tinysrgb&w=400",
			Category:    "Programming",
			Lessons:     24,
			Students:    1250,
		},
		{
			Title:       "Data Science with Python",
			Description: "Master data analysis, visualization, and machine learning",
			Instructor:  "Dr. Michael Chen",
			Duration:    "10 weeks",
			Level:       "Beginner",
			Price:       249,
			ImageURL:    "https://images.pexels.com/photos/590020/pexels-photo-590020.jpeg?auto=compress&cs=tinysrgb&w=400",
			Category:    "Data Science",
			Lessons:     20,
			Students:    890,
		},
		{
			Title:       "Digital Marketing Mastery",
			Description: "Complete guide to modern digital marketing strategies",
			Instructor:  "Emma Rodriguez",
			Duration:    "8 weeks",
			Level:       "Beginner",
			Price:       199,
			ImageURL:    "https://images.pexels.com/photos/265087/pexels-photo-265087.jpeg?auto=compress&cs=tinysrgb&w=400",
			Category:    "Marketing",
			Lessons:     16,
			Students:    2100,
		},
		{
			Title:       "UI/UX Design Fundamentals",
			Description: "Learn user interface and experience design principles",
			Instructor:  "Alex Thompson",
			Duration:    "6 weeks",
			Level:       "Beginner",
			Price:       179,
			ImageURL:    "https://images.pexels.com/photos/196644/pexels-photo-196644.jpeg?auto=compress&cs=tinysrgb&w=400",
			Category:    "Design",
			Lessons:     12,
			Students:    756,
		},
		{
			Title:       "Mobile App Development",
			Description: "Build native mobile apps for iOS and Android",
			Instructor:  "David Park",
			Duration:    "14 weeks",
			Level:       "Advanced",
			Price:       349,
			ImageURL:    "https://images.pexels.com/photos/607812/pexels-photo-607812.jpeg?auto=compress&cs=tinysrgb&w=400",
			Category:    "Programming",
			Lessons:     28,
			Students:    645,
		},
		{
			Title:       "Cybersecurity Essentials",
			Description: "Protect systems and data from digital threats",
			Instructor:  "Rachel Adams",
			Duration:    "9 weeks",
			Level:       "Intermediate",
			Price:       279,
			ImageURL:    "https://images.pexels.com/photos/60504/security-protection-anti-virus-software-60504.jpeg?auto=compress&cs=tinysrgb&w=400",
			Category:    "Security",
			Lessons:     18,
			Students:    432,
		},
	}

	if err := Database.Db.Create(&sampleCourses).Error; err != nil {
		log.Printf("Error inserting sample courses: %v", err)
		return
	}
	log.Println("Sample courses inserted successfully")
}
