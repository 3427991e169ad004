package posts

const fallbackSourceBase = "https://github.com/bonsa9/blog-posts/blob/main/"

var fallbackPosts = []Record{
	{
		ID:        "1",
		Title:     "Getting Started with React Native Development",
		Excerpt:   "A comprehensive guide to building your first React Native application with modern best practices and tools.",
		Date:      "2024-01-15",
		ReadTime:  "8 min read",
		Tags:      []string{"React Native", "Mobile Development", "JavaScript"},
		Slug:      "getting-started-react-native",
		SourceURL: fallbackSourceBase + "react-native-guide.md",
	},
	{
		ID:        "2",
		Title:     "Building Scalable Web Apps with Next.js",
		Excerpt:   "Learn how to create performant and scalable web applications using Next.js 14 with the new App Router.",
		Date:      "2024-01-10",
		ReadTime:  "12 min read",
		Tags:      []string{"Next.js", "React", "Web Development", "TypeScript"},
		Slug:      "nextjs-scalable-apps",
		SourceURL: fallbackSourceBase + "nextjs-scalable-apps.md",
	},
	{
		ID:        "3",
		Title:     "Flutter vs React Native: A Developer's Perspective",
		Excerpt:   "Comparing two popular cross‑platform frameworks from a developer who has worked extensively with both.",
		Date:      "2024-01-05",
		ReadTime:  "10 min read",
		Tags:      []string{"Flutter", "React Native", "Mobile Development", "Comparison"},
		Slug:      "flutter-vs-react-native",
		SourceURL: fallbackSourceBase + "flutter-vs-react-native.md",
	},
	{
		ID:        "4",
		Title:     "My Journey at Adama Science and Technology University",
		Excerpt:   "Reflecting on my Software Engineering education and the experiences that shaped my career path.",
		Date:      "2024-01-01",
		ReadTime:  "6 min read",
		Tags:      []string{"Education", "Personal", "Software Engineering", "University"},
		Slug:      "university-journey",
		SourceURL: fallbackSourceBase + "university-journey.md",
	},
}

// Fallback returns a fresh copy of the built-in posts, newest first.
func Fallback() []Record {
	out := make([]Record, len(fallbackPosts))
	for i, post := range fallbackPosts {
		out[i] = post.clone()
	}
	return out
}
