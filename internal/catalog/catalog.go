package catalog

import (
	"sort"
	"time"

	"empoweryouth-api/pkg/models"
	"empoweryouth-api/pkg/utils"
)

// Jobs returns the fixed six-entry job catalog sorted by match
// percentage descending. Every call assigns fresh identifiers: job ids
// are only meaningful within the request that produced them. The sort
// is stable so equal percentages would keep catalog order.
func Jobs() []models.Job {
	now := time.Now()
	jobs := []models.Job{
		{
			ID:              utils.NewID(),
			Title:           "Frontend Developer",
			Company:         "TechStart India",
			Location:        "Mumbai",
			Salary:          "3-6 LPA",
			Type:            "Full-time",
			Remote:          true,
			Skills:          []string{"JavaScript", "React", "CSS", "HTML"},
			Description:     "Build modern web applications using React and JavaScript",
			MatchPercentage: 85,
			PostedAt:        now,
		},
		{
			ID:              utils.NewID(),
			Title:           "Data Analyst",
			Company:         "Analytics Pro",
			Location:        "Bangalore",
			Salary:          "4-7 LPA",
			Type:            "Full-time",
			Remote:          false,
			Skills:          []string{"Python", "SQL", "Excel", "Data Analysis"},
			Description:     "Analyze data and create insights for business decisions",
			MatchPercentage: 78,
			PostedAt:        now,
		},
		{
			ID:              utils.NewID(),
			Title:           "Digital Marketing Executive",
			Company:         "MarketGrow",
			Location:        "Delhi",
			Salary:          "2.5-4 LPA",
			Type:            "Full-time",
			Remote:          true,
			Skills:          []string{"Digital Marketing", "SEO", "Content Writing", "Social Media"},
			Description:     "Drive digital marketing campaigns and grow online presence",
			MatchPercentage: 72,
			PostedAt:        now,
		},
		{
			ID:              utils.NewID(),
			Title:           "Sales Associate",
			Company:         "SalesPro India",
			Location:        "Chennai",
			Salary:          "3-5 LPA",
			Type:            "Full-time",
			Remote:          false,
			Skills:          []string{"Sales", "Communication", "Customer Service", "CRM"},
			Description:     "Drive sales growth and build customer relationships",
			MatchPercentage: 68,
			PostedAt:        now,
		},
		{
			ID:              utils.NewID(),
			Title:           "Customer Support Specialist",
			Company:         "SupportPlus",
			Location:        "Pune",
			Salary:          "2-4 LPA",
			Type:            "Full-time",
			Remote:          true,
			Skills:          []string{"Communication", "Problem Solving", "English", "Customer Service"},
			Description:     "Provide excellent customer support via chat and email",
			MatchPercentage: 75,
			PostedAt:        now,
		},
		{
			ID:              utils.NewID(),
			Title:           "Graphic Designer",
			Company:         "Creative Studio",
			Location:        "Hyderabad",
			Salary:          "2.5-5 LPA",
			Type:            "Full-time",
			Remote:          true,
			Skills:          []string{"Photoshop", "Illustrator", "Design", "Creativity"},
			Description:     "Create stunning visual designs for digital and print media",
			MatchPercentage: 70,
			PostedAt:        now,
		},
	}

	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].MatchPercentage > jobs[j].MatchPercentage
	})

	return jobs
}

// Courses returns the fixed six-entry course catalog with fresh
// identifiers per call, in catalog order (no sorting).
func Courses() []models.Course {
	return []models.Course{
		{
			ID:          utils.NewID(),
			Title:       "Full Stack Web Development",
			Provider:    "IBM SkillsBuild",
			Description: "Learn to build complete web applications with modern technologies",
			Duration:    "12 weeks",
			Price:       "Free",
			Rating:      4.5,
			Skills:      []string{"JavaScript", "React", "Node.js", "MongoDB"},
			Level:       "Beginner",
		},
		{
			ID:          utils.NewID(),
			Title:       "Data Science Fundamentals",
			Provider:    "IBM SkillsBuild",
			Description: "Master the basics of data science and analytics",
			Duration:    "8 weeks",
			Price:       "Free",
			Rating:      4.6,
			Skills:      []string{"Python", "Statistics", "Machine Learning", "Data Visualization"},
			Level:       "Beginner",
		},
		{
			ID:          utils.NewID(),
			Title:       "Digital Marketing Certification",
			Provider:    "NSDC",
			Description: "Comprehensive digital marketing skills for career growth",
			Duration:    "6 weeks",
			Price:       "2999",
			Rating:      4.3,
			Skills:      []string{"SEO", "Google Ads", "Social Media Marketing", "Analytics"},
			Level:       "Intermediate",
		},
		{
			ID:          utils.NewID(),
			Title:       "Business Communication",
			Provider:    "Coursera",
			Description: "Improve professional communication skills",
			Duration:    "4 weeks",
			Price:       "1999",
			Rating:      4.4,
			Skills:      []string{"Communication", "Presentation", "Email Writing", "English"},
			Level:       "Beginner",
		},
		{
			ID:          utils.NewID(),
			Title:       "Python Programming",
			Provider:    "IBM SkillsBuild",
			Description: "Learn Python programming from basics to advanced",
			Duration:    "10 weeks",
			Price:       "Free",
			Rating:      4.7,
			Skills:      []string{"Python", "Programming", "Data Structures", "Algorithms"},
			Level:       "Beginner",
		},
		{
			ID:          utils.NewID(),
			Title:       "AI and Machine Learning",
			Provider:    "Coursera",
			Description: "Introduction to AI and ML concepts and applications",
			Duration:    "16 weeks",
			Price:       "4999",
			Rating:      4.8,
			Skills:      []string{"Machine Learning", "AI", "Python", "TensorFlow"},
			Level:       "Advanced",
		},
	}
}
