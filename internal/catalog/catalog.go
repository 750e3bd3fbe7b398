// Package catalog holds the mock records the board starts with. Every
// function returns a fresh copy so callers may mutate what they get.
package catalog

import "github.com/amishk599/careerconnect/internal/model"

// Jobs returns the seed listings, newest first.
func Jobs() []model.Job {
	return []model.Job{
		{
			ID:              "1",
			Title:           "Senior React Engineer",
			Company:         "TechFlow Solutions",
			Location:        "Remote",
			Type:            model.FullTime,
			SalaryRange:     "$120k - $160k",
			Description:     "We are looking for an experienced React developer to lead our frontend team. You will be responsible for architecting scalable UI components and mentoring junior developers.",
			Requirements:    []string{"React", "TypeScript", "Node.js", "AWS"},
			PostedAt:        "2 days ago",
			LogoURL:         "https://ui-avatars.com/api/?name=TechFlow&background=random",
			ApplicantsCount: 12,
		},
		{
			ID:              "2",
			Title:           "Product Designer",
			Company:         "Creative Gigs",
			Location:        "New York, NY",
			Type:            model.FullTime,
			SalaryRange:     "$90k - $130k",
			Description:     "Join our award-winning design team. We need someone with a keen eye for detail and a passion for user-centric design principles.",
			Requirements:    []string{"Figma", "UI/UX", "Prototyping", "HTML/CSS"},
			PostedAt:        "4 hours ago",
			LogoURL:         "https://ui-avatars.com/api/?name=Creative+Gigs&background=random",
			ApplicantsCount: 45,
		},
		{
			ID:              "3",
			Title:           "Backend Developer",
			Company:         "DataCorp",
			Location:        "San Francisco, CA",
			Type:            model.Contract,
			SalaryRange:     "$80/hr",
			Description:     "Help us build robust APIs and microservices. You should have experience with high-load systems and database optimization.",
			Requirements:    []string{"Python", "Django", "PostgreSQL", "Redis"},
			PostedAt:        "1 day ago",
			LogoURL:         "https://ui-avatars.com/api/?name=DataCorp&background=random",
			ApplicantsCount: 8,
		},
		{
			ID:              "4",
			Title:           "Marketing Specialist",
			Company:         "GrowthHackers",
			Location:        "Austin, TX",
			Type:            model.PartTime,
			SalaryRange:     "$30k - $45k",
			Description:     "We need a creative marketer to manage our social media channels and run ad campaigns.",
			Requirements:    []string{"SEO", "Content Marketing", "Google Analytics"},
			PostedAt:        "3 days ago",
			LogoURL:         "https://ui-avatars.com/api/?name=GrowthHackers&background=random",
			ApplicantsCount: 23,
		},
	}
}

// Projects returns the seed portfolio entries.
func Projects() []model.Project {
	return []model.Project{
		{
			ID:           "1",
			Title:        "E-Commerce Platform",
			Description:  "A full-stack e-commerce platform with features like product management, shopping cart, and payment integration.",
			Technologies: []string{"React", "Node.js", "MongoDB", "Express"},
			ImageURL:     "https://picsum.photos/id/20/400/200",
			Stats:        model.ProjectStats{Views: 1200, Likes: 45, Comments: 12},
		},
		{
			ID:           "2",
			Title:        "Task Management App",
			Description:  "A collaborative task management application with real-time updates and team collaboration features.",
			Technologies: []string{"Vue.js", "Firebase", "Tailwind CSS"},
			ImageURL:     "https://picsum.photos/id/24/400/200",
			Stats:        model.ProjectStats{Views: 850, Likes: 32, Comments: 8},
		},
		{
			ID:           "3",
			Title:        "Data Visualization Dashboard",
			Description:  "An interactive dashboard for visualizing complex data sets with real-time updates and custom filters.",
			Technologies: []string{"Python", "D3.js", "Flask", "PostgreSQL"},
			ImageURL:     "https://picsum.photos/id/26/400/200",
			Stats:        model.ProjectStats{Views: 1500, Likes: 67, Comments: 15},
		},
	}
}

// Applications returns the job seeker's seed application history.
func Applications() []model.Application {
	return []model.Application{
		{ID: "1", JobID: "1", JobTitle: "Senior Software Engineer", CompanyName: "Tech Solutions Inc.", Status: model.StatusInterview, AppliedDate: "2024-03-15"},
		{ID: "2", JobID: "2", JobTitle: "Product Manager", CompanyName: "Innovate Corp", Status: model.StatusPending, AppliedDate: "2024-03-20"},
		{ID: "3", JobID: "3", JobTitle: "Frontend Developer", CompanyName: "WebWorks", Status: model.StatusRejected, AppliedDate: "2024-02-10"},
	}
}

// Experience returns the profile work history.
func Experience() []model.Experience {
	return []model.Experience{
		{
			ID:          "1",
			Title:       "Senior Frontend Developer",
			Company:     "TechCorp Inc.",
			StartDate:   "2021-06-01",
			Current:     true,
			Description: "Leading the frontend team in migration to React. Improved performance by 40%.",
		},
		{
			ID:          "2",
			Title:       "Web Developer",
			Company:     "StartUp Alpha",
			StartDate:   "2019-01-01",
			EndDate:     "2021-05-31",
			Description: "Developed and maintained client websites using HTML, CSS, and JavaScript.",
		},
	}
}

// Education returns the profile schooling.
func Education() []model.Education {
	return []model.Education{
		{
			ID:          "1",
			Degree:      "B.S. Computer Science",
			Institution: "University of Tech",
			StartDate:   "2015-09-01",
			EndDate:     "2019-05-20",
			Description: "Graduated with Honors. specialized in Artificial Intelligence.",
		},
	}
}

// DefaultSkills is shown on a profile whose user has no skills of their own.
func DefaultSkills() []string {
	return []string{"React", "TypeScript", "Node.js", "UI/UX", "Tailwind"}
}

// Plans returns the premium page tiers.
func Plans() []model.Plan {
	return []model.Plan{
		{Name: "Basic", PriceMonthly: 0, Features: []string{"Basic Job Search", "Profile Creation", "Email Notifications"}},
		{Name: "Premium", PriceMonthly: 12, Highlighted: true, Features: []string{"Priority Applications", "Advanced Job Matching", "Career Coaching", "Salary Insights"}},
		{Name: "Enterprise", PriceMonthly: 49, Features: []string{"All Premium Features", "Dedicated Support", "Team Collaboration"}},
	}
}
