package memory

import (
	"fmt"

	"github.com/SIDDARDHA2006/OpporLink/internal/domain/community"
	"github.com/SIDDARDHA2006/OpporLink/internal/domain/events"
	"github.com/SIDDARDHA2006/OpporLink/internal/domain/opportunities"
	"github.com/SIDDARDHA2006/OpporLink/internal/domain/skills"
	"github.com/SIDDARDHA2006/OpporLink/internal/domain/user"
)

// Seed loads the launch catalog. Events are validated on the way in so
// every read path downstream can trust the shape.
func (s *Store) Seed() error {
	seedEvents := []*events.Event{
		{
			ID:          1,
			Title:       "Future Hack 2026",
			Description: "Join us for an exciting AI/ML hackathon where you will build innovative solutions using cutting-edge technologies.",
			Date:        "Jan 30 - Feb 2",
			Type:        "Hackathon",
			Rules: []string{
				"Teams of up to 4 members",
				"All code must be written during the event",
				"Use only publicly available datasets or those provided by organizers",
			},
			Timeline: []string{
				"Jan 15, 2026 - Registrations open",
				"Jan 28, 2026 - Shortlisting & team confirmations",
				"Jan 30 - Feb 2, 2026 - Main hackathon",
			},
			Category:             events.CategoryHackathons,
			Mode:                 events.ModeOnline,
			Domain:               "ai-ml",
			Difficulty:           events.DifficultyIntermediate,
			EventDate:            "2026-01-30T09:00:00Z",
			RegistrationDeadline: "2026-01-28T23:59:59Z",
			Prize:                "$10,000",
			Organizer:            "Tech Institute",
			RequiredSkills:       []string{"Python", "Machine Learning", "TensorFlow"},
			Registrations:        245,
			MaxParticipants:      500,
			Location:             "Online",
			Tags:                 []string{"creative", "coding", "ai"},
			Skills:               []string{"Python", "Machine Learning", "TensorFlow"},
		},
		{
			ID:          2,
			Title:       "Web Dev Bootcamp",
			Description: "Intensive 3-day bootcamp covering modern web development with React, Node.js, and MongoDB.",
			Date:        "Feb 5 - Feb 7",
			Type:        "Workshop",
			Rules: []string{
				"Individual or pair participation allowed",
				"Bring your own laptop",
				"Complete all daily assignments to receive certificate",
			},
			Timeline: []string{
				"Feb 1, 2026 - Registrations close",
				"Feb 5 - Feb 7, 2026 - Bootcamp sessions",
				"Feb 10, 2026 - Project feedback & certificates",
			},
			Category:             events.CategoryWorkshops,
			Mode:                 events.ModeOffline,
			Domain:               "web-dev",
			Difficulty:           events.DifficultyBeginner,
			EventDate:            "2026-02-05T10:00:00Z",
			RegistrationDeadline: "2026-02-01T23:59:59Z",
			Prize:                "Certificate",
			Organizer:            "Code Academy",
			RequiredSkills:       []string{"HTML", "CSS", "JavaScript"},
			Registrations:        180,
			MaxParticipants:      200,
			Location:             "New York, NY",
			Tags:                 []string{"coding"},
			Skills:               []string{"React", "Node.js", "MongoDB"},
		},
		{
			ID:          3,
			Title:       "Design Sprint 2026",
			Description: "Collaborative design sprint focusing on UI/UX principles and user-centered design methodologies.",
			Date:        "Feb 10 - Feb 12",
			Type:        "Competition",
			Rules: []string{
				"Teams of 3-5 designers",
				"Submit Figma prototypes and presentation deck",
				"Follow provided design brief and accessibility guidelines",
			},
			Timeline: []string{
				"Feb 1, 2026 - Design brief release",
				"Feb 10 - Feb 12, 2026 - Sprint days",
				"Feb 15, 2026 - Jury presentations & results",
			},
			Category:             events.CategoryCompetitions,
			Mode:                 events.ModeHybrid,
			Domain:               "ui-ux",
			Difficulty:           events.DifficultyIntermediate,
			EventDate:            "2026-02-10T09:30:00Z",
			RegistrationDeadline: "2026-02-08T23:59:59Z",
			Prize:                "$5,000",
			Organizer:            "Design Studio",
			RequiredSkills:       []string{"Figma", "UI/UX", "Prototyping"},
			Registrations:        95,
			MaxParticipants:      150,
			Location:             "San Francisco, CA",
			Tags:                 []string{"creative", "design"},
			Skills:               []string{"Figma", "UI/UX", "Prototyping"},
		},
		{
			ID:          4,
			Title:       "Startup Weekend",
			Description: "Build a startup from scratch in 54 hours with mentorship from successful entrepreneurs.",
			Date:        "Feb 15 - Feb 17",
			Type:        "Competition",
			Rules: []string{
				"Teams of 2-6 members",
				"Original startup ideas only",
				"Pitch deck and demo required for final presentation",
			},
			Timeline: []string{
				"Feb 10, 2026 - Idea submission & team formation",
				"Feb 15 - Feb 17, 2026 - Build & mentor sessions",
				"Feb 18, 2026 - Final pitches & awards",
			},
			Category:             events.CategoryCollegeEvents,
			Mode:                 events.ModeOffline,
			Domain:               "business",
			Difficulty:           events.DifficultyAdvanced,
			EventDate:            "2026-02-15T09:00:00Z",
			RegistrationDeadline: "2026-02-12T23:59:59Z",
			Prize:                "$15,000",
			Organizer:            "Startup Hub",
			RequiredSkills:       []string{"Business Strategy", "Pitching", "Marketing"},
			Registrations:        320,
			MaxParticipants:      400,
			Location:             "Boston, MA",
			Tags:                 []string{"business", "creative"},
			Skills:               []string{"Business Strategy", "Pitching", "Marketing"},
		},
		{
			ID:          5,
			Title:       "Cloud Computing Workshop",
			Description: "Hands-on workshop on AWS, Azure, and Google Cloud Platform for modern cloud architecture.",
			Date:        "Feb 20 - Feb 22",
			Type:        "Workshop",
			Rules: []string{
				"Basic programming knowledge required",
				"Participants must have trial accounts on at least one cloud provider",
				"Complete final lab to receive completion badge",
			},
			Timeline: []string{
				"Feb 10, 2026 - Pre-work & setup instructions",
				"Feb 20 - Feb 22, 2026 - Live workshop",
				"Feb 25, 2026 - Follow-up Q&A session",
			},
			Category:             events.CategoryWebinars,
			Mode:                 events.ModeOnline,
			Domain:               "data-science",
			Difficulty:           events.DifficultyIntermediate,
			EventDate:            "2026-02-20T11:00:00Z",
			RegistrationDeadline: "2026-02-18T23:59:59Z",
			Prize:                "AWS Certification Voucher",
			Organizer:            "Cloud Academy",
			RequiredSkills:       []string{"AWS", "Docker", "Kubernetes"},
			Registrations:        410,
			MaxParticipants:      600,
			Location:             "Online",
			Tags:                 []string{"coding"},
			Skills:               []string{"AWS", "Docker", "Kubernetes"},
		},
	}

	for _, e := range seedEvents {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("seed event %d: %w", e.ID, err)
		}
	}

	seedOpportunities := []*opportunities.Opportunity{
		{
			ID:           1,
			Title:        "Software Engineer Intern",
			Company:      "Google",
			Description:  "Work on cutting-edge projects with world-class engineers. Build scalable systems serving billions of users.",
			Deadline:     "Feb 28, 2026",
			Location:     "Mountain View, CA",
			Type:         "Internship",
			Duration:     "12 weeks",
			Stipend:      "$8,000/month",
			Skills:       []string{"Python", "DSA", "System Design"},
			Requirements: []string{"CS degree or equivalent", "3.0+ GPA", "Strong problem-solving skills"},
			Logo:         "G",
			Category:     "internships",
			Applicants:   1250,
			Openings:     50,
		},
		{
			ID:           2,
			Title:        "Data Analyst Internship",
			Company:      "Global CobsF Jam",
			Description:  "Analyze large datasets to derive insights and support business decision-making.",
			Deadline:     "Mar 10, 2026",
			Location:     "Chicago, IL",
			Type:         "Internship",
			Duration:     "10 weeks",
			Stipend:      "$6,000/month",
			Skills:       []string{"UI/UX", "Figma", "SQL", "Excel", "Tableau"},
			Requirements: []string{"Statistics background", "Excel proficiency", "SQL knowledge"},
			Logo:         "GC",
			Category:     "internships",
			Applicants:   890,
			Openings:     30,
		},
		{
			ID:           3,
			Title:        "Frontend Developer",
			Company:      "Meta",
			Description:  "Build beautiful, responsive user interfaces for Facebook and Instagram products.",
			Deadline:     "Mar 15, 2026",
			Location:     "Menlo Park, CA",
			Type:         "Internship",
			Duration:     "12 weeks",
			Stipend:      "$9,000/month",
			Skills:       []string{"React", "JavaScript", "CSS", "TypeScript"},
			Requirements: []string{"Strong JavaScript skills", "React experience", "Portfolio required"},
			Logo:         "M",
			Category:     "internships",
			Applicants:   2100,
			Openings:     40,
		},
		{
			ID:           4,
			Title:        "ML Engineer Intern",
			Company:      "Microsoft",
			Description:  "Develop machine learning models and AI solutions for Azure cloud services.",
			Deadline:     "Mar 20, 2026",
			Location:     "Redmond, WA",
			Type:         "Internship",
			Duration:     "12 weeks",
			Stipend:      "$8,500/month",
			Skills:       []string{"Python", "TensorFlow", "ML", "PyTorch"},
			Requirements: []string{"ML coursework", "Python expertise", "Research experience preferred"},
			Logo:         "MS",
			Category:     "internships",
			Applicants:   1680,
			Openings:     35,
		},
		{
			ID:           5,
			Title:        "Product Designer",
			Company:      "Apple",
			Description:  "Design next-generation products and experiences for millions of users worldwide.",
			Deadline:     "Mar 25, 2026",
			Location:     "Cupertino, CA",
			Type:         "Internship",
			Duration:     "14 weeks",
			Stipend:      "$9,500/month",
			Skills:       []string{"Figma", "UI/UX", "Design", "Prototyping"},
			Requirements: []string{"Design portfolio", "3+ years design experience", "User research skills"},
			Logo:         "A",
			Category:     "internships",
			Applicants:   3200,
			Openings:     20,
		},
	}

	seedSkills := []*skills.Skill{
		{
			ID:            1,
			Name:          "React",
			Category:      "Frontend Development",
			Difficulty:    "Intermediate",
			Learners:      15420,
			Courses:       45,
			AvgTime:       "8 weeks",
			Description:   "Modern JavaScript library for building user interfaces",
			RelatedSkills: []string{"JavaScript", "HTML", "CSS"},
		},
		{
			ID:            2,
			Name:          "DSA",
			Category:      "Computer Science",
			Difficulty:    "Advanced",
			Learners:      28900,
			Courses:       62,
			AvgTime:       "12 weeks",
			Description:   "Data Structures and Algorithms - fundamental CS concepts",
			RelatedSkills: []string{"Python", "Java", "C++"},
		},
		{
			ID:            3,
			Name:          "Python",
			Category:      "Programming",
			Difficulty:    "Beginner",
			Learners:      42300,
			Courses:       89,
			AvgTime:       "6 weeks",
			Description:   "Versatile programming language for web, data science, and automation",
			RelatedSkills: []string{"Django", "Flask", "Pandas"},
		},
		{
			ID:            4,
			Name:          "UI/UX",
			Category:      "Design",
			Difficulty:    "Intermediate",
			Learners:      19800,
			Courses:       38,
			AvgTime:       "10 weeks",
			Description:   "User Interface and User Experience design principles",
			RelatedSkills: []string{"Figma", "Adobe XD", "Sketch"},
		},
		{
			ID:            5,
			Name:          "Machine Learning",
			Category:      "AI/ML",
			Difficulty:    "Advanced",
			Learners:      24600,
			Courses:       53,
			AvgTime:       "16 weeks",
			Description:   "Build intelligent systems that learn from data",
			RelatedSkills: []string{"Python", "TensorFlow", "Statistics"},
		},
		{
			ID:            6,
			Name:          "Cloud Computing",
			Category:      "Infrastructure",
			Difficulty:    "Intermediate",
			Learners:      18700,
			Courses:       47,
			AvgTime:       "10 weeks",
			Description:   "AWS, Azure, and GCP cloud platforms and services",
			RelatedSkills: []string{"Docker", "Kubernetes", "DevOps"},
		},
	}

	seedUsers := []*user.User{
		{
			ID:                   1,
			Name:                 "John Doe",
			Email:                "john@example.com",
			Skills:               []string{"React", "Python"},
			AppliedOpportunities: []int{1, 3},
			RegisteredEvents:     []int{1, 2},
		},
	}

	seedPosts := []*community.Post{
		{
			ID:       1,
			Author:   "Sarah Chen",
			Title:    "How I landed my dream internship at Google",
			Content:  "Sharing my journey and tips...",
			Likes:    342,
			Comments: 28,
			Date:     "2026-01-25",
		},
		{
			ID:       2,
			Author:   "Mike Johnson",
			Title:    "Best resources for learning React in 2026",
			Content:  "Here are my favorite courses and tutorials...",
			Likes:    256,
			Comments: 19,
			Date:     "2026-01-26",
		},
	}

	seedGroups := []*community.StudyGroup{
		{
			ID:          1,
			Name:        "DSA Interview Prep",
			Members:     45,
			NextMeeting: "Jan 30, 2026 - 6:00 PM",
		},
		{
			ID:          2,
			Name:        "React Developers Circle",
			Members:     78,
			NextMeeting: "Jan 31, 2026 - 7:00 PM",
		},
	}

	return s.Update(func(d *Data) error {
		d.Events = seedEvents
		d.Opportunities = seedOpportunities
		d.Skills = seedSkills
		d.Users = seedUsers
		d.Posts = seedPosts
		d.StudyGroups = seedGroups

		d.NextUserID = 1
		for _, u := range d.Users {
			if u.ID >= d.NextUserID {
				d.NextUserID = u.ID + 1
			}
		}
		return nil
	})
}
