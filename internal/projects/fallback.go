package projects

import (
	"time"

	"github.com/bonsa9/portfolio/internal/github"
)

const fallbackOwnerURL = "https://github.com/johndeveloper/"

func fallbackRepo(id int64, name, description string, topics []string, stars, forks int, language, updated string) github.Repository {
	updatedAt, _ := time.Parse(time.RFC3339, updated)
	return github.Repository{
		ID:              id,
		Name:            name,
		Description:     description,
		HTMLURL:         fallbackOwnerURL + name,
		Topics:          topics,
		StargazersCount: stars,
		ForksCount:      forks,
		Language:        language,
		UpdatedAt:       updatedAt,
	}
}

// Fallback returns a fresh copy of the built-in repositories.
func Fallback() []github.Repository {
	return []github.Repository{
		fallbackRepo(1, "ecommerce-mobile-app", "A full-featured e-commerce mobile app built with React Native",
			[]string{"react-native", "mobile", "ecommerce", "firebase"}, 45, 12, "JavaScript", "2024-01-15T10:30:00Z"),
		fallbackRepo(2, "saas-dashboard", "Modern SaaS dashboard with analytics and user management",
			[]string{"nextjs", "web", "dashboard", "typescript"}, 78, 23, "TypeScript", "2024-01-10T14:20:00Z"),
		fallbackRepo(3, "fitness-tracker-flutter", "Cross-platform fitness tracking app with social features",
			[]string{"flutter", "mobile", "fitness", "dart"}, 32, 8, "Dart", "2024-01-08T09:15:00Z"),
		fallbackRepo(4, "portfolio-website", "Personal portfolio website built with Next.js and Tailwind CSS",
			[]string{"nextjs", "web", "portfolio", "tailwindcss"}, 15, 5, "TypeScript", "2024-01-05T16:45:00Z"),
		fallbackRepo(5, "chat-app-react-native", "Real-time chat application with push notifications",
			[]string{"react-native", "mobile", "chat", "realtime"}, 67, 19, "JavaScript", "2024-01-03T11:30:00Z"),
		fallbackRepo(6, "blog-cms-nextjs", "Headless CMS blog platform with markdown support",
			[]string{"nextjs", "web", "blog", "cms"}, 28, 7, "TypeScript", "2023-12-28T13:20:00Z"),
		fallbackRepo(7, "weather-app-flutter", "Beautiful weather app with location-based forecasts",
			[]string{"flutter", "mobile", "weather", "api"}, 23, 6, "Dart", "2023-12-20T08:45:00Z"),
		fallbackRepo(8, "task-manager-web", "Collaborative task management web application",
			[]string{"react", "web", "productivity", "collaboration"}, 41, 14, "TypeScript", "2023-12-15T15:20:00Z"),
	}
}
