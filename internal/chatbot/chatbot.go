package chatbot

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Persona carries the site owner's public facts.
type Persona struct {
	Name       string
	Email      string
	Phone      string
	Twitter    string
	Location   string
	University string
	Degree     string
	GitHubURL  string
}

// Link is an actionable URL attached to a reply.
type Link struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// Reply is one bot message.
type Reply struct {
	ID          string   `json:"id"`
	Text        string   `json:"text"`
	Suggestions []string `json:"suggestions"`
	Links       []Link   `json:"links,omitempty"`
	Topic       Topic    `json:"topic"`
}

type rule struct {
	topic    Topic
	keywords []string
}

// rules are checked in order; the first keyword hit wins.
var rules = []rule{
	{TopicBackground, []string{"background", "about", "story", "journey"}},
	{TopicSkills, []string{"skill", "technology", "tech"}},
	{TopicProjects, []string{"project", "work", "portfolio"}},
	{TopicContact, []string{"contact", "reach", "email"}},
	{TopicEducation, []string{"education", "university", "study"}},
	{TopicLocation, []string{"location", "where", "based"}},
	{TopicThanks, []string{"thank"}},
	{TopicGreeting, []string{"hello", "hi", "hey"}},
}

// Classify picks the reply topic for message given the previous topic.
func Classify(message string, prior Topic) Topic {
	lower := strings.ToLower(message)

	switch prior {
	case TopicSkills:
		if containsAny(lower, "more", "detail") {
			return TopicDetailedSkills
		}
	case TopicProjects:
		if containsAny(lower, "more", "detail") {
			return TopicDetailedProjects
		}
	case TopicContact:
		if containsAny(lower, "prefer", "best") {
			return TopicContactPreferences
		}
	}

	for _, r := range rules {
		if containsAny(lower, r.keywords...) {
			return r.topic
		}
	}
	return TopicFallback
}

// Respond answers message. It has no side effects beyond generating an ID.
func Respond(message string, prior Topic, persona Persona) Reply {
	topic := Classify(message, prior)
	reply := compose(topic, persona)
	reply.ID = uuid.NewString()
	reply.Topic = topic
	return reply
}

// Welcome is the opening message shown before the visitor types.
func Welcome(persona Persona) Reply {
	return Reply{
		ID: uuid.NewString(),
		Text: fmt.Sprintf("Hi there! I'm %s's assistant. Ask me about the journey from %s, the projects, the skills, or how to get in touch.",
			persona.Name, persona.University),
		Suggestions: []string{
			"Tell me about your background",
			"What technologies do you use?",
			"Show me your projects",
			"How can I contact you?",
		},
		Topic: TopicNone,
	}
}

func compose(topic Topic, p Persona) Reply {
	switch topic {
	case TopicBackground:
		return Reply{
			Text: fmt.Sprintf("%s studied %s at %s and builds mobile and web applications, from first sketch to store release.",
				p.Name, p.Degree, p.University),
			Suggestions: []string{"What technologies do you use?", "Show me your projects", "Where are you based?"},
		}
	case TopicSkills:
		return Reply{
			Text:        "Mobile: React Native and Flutter. Web: React, Next.js, TypeScript and Tailwind CSS. Backend: Node.js, Firebase and PostgreSQL.",
			Suggestions: []string{"Tell me more about your skills", "Show me your projects"},
		}
	case TopicDetailedSkills:
		return Reply{
			Text: "On the frontend I work with React, Next.js and TypeScript. On mobile I ship React Native and Flutter apps to both stores. " +
				"Backends run on Node.js, Firebase and AWS, and Git, Docker and CI pipelines hold it together.",
			Suggestions: []string{"Which technology do you prefer?", "Show me projects using these skills", "What are you learning next?"},
		}
	case TopicProjects:
		return Reply{
			Text:        "Recent work includes an e-commerce mobile app, a SaaS dashboard, a Flutter fitness tracker and this portfolio site.",
			Suggestions: []string{"Tell me more about these projects", "Can I see the code?"},
			Links:       projectLinks(p),
		}
	case TopicDetailedProjects:
		return Reply{
			Text: "The e-commerce app pairs React Native with Firebase and Stripe. The SaaS dashboard uses Next.js with real-time charts. " +
				"The fitness tracker is a Flutter app with sensor based step counting.",
			Suggestions: []string{"Tell me about the e-commerce app", "How did you build this portfolio?", "What was the biggest challenge?"},
			Links:       projectLinks(p),
		}
	case TopicContact:
		return Reply{
			Text:        fmt.Sprintf("You can reach %s by email at %s or by phone at %s.", p.Name, p.Email, p.Phone),
			Suggestions: []string{"What's the best way to reach you?", "Are you available for freelance work?"},
			Links:       contactLinks(p),
		}
	case TopicContactPreferences:
		return Reply{
			Text: fmt.Sprintf("Email (%s) is best for detailed discussions and WhatsApp (%s) gets the fastest response. Twitter %s is good for tech chat.",
				p.Email, p.Phone, p.Twitter),
			Suggestions: []string{"What time zone are you in?", "Are you available for freelance work?"},
			Links:       append(contactLinks(p), twitterLink(p)...),
		}
	case TopicEducation:
		return Reply{
			Text:        fmt.Sprintf("%s graduated in %s from %s.", p.Name, p.Degree, p.University),
			Suggestions: []string{"Tell me about your background", "What technologies do you use?"},
		}
	case TopicLocation:
		return Reply{
			Text:        fmt.Sprintf("Based in %s and open to remote work.", p.Location),
			Suggestions: []string{"How can I contact you?", "Show me your projects"},
		}
	case TopicThanks:
		return Reply{
			Text:        "You're welcome! Anything else you'd like to know?",
			Suggestions: []string{"Show me your projects", "How can I contact you?"},
		}
	case TopicGreeting:
		return Reply{
			Text:        fmt.Sprintf("Hello! I can tell you about %s's background, skills, projects and how to get in touch.", p.Name),
			Suggestions: []string{"Tell me about your background", "What technologies do you use?", "Show me your projects"},
		}
	default:
		return Reply{
			Text:        "I'm not sure about that one. Try asking about background, skills, projects, education or contact details.",
			Suggestions: []string{"Tell me about your background", "Show me your projects", "How can I contact you?"},
		}
	}
}

func projectLinks(p Persona) []Link {
	links := []Link{{Text: "View All Projects", URL: "/projects"}}
	if p.GitHubURL != "" {
		links = append(links, Link{Text: "GitHub", URL: p.GitHubURL})
	}
	return links
}

var nonDigits = regexp.MustCompile(`[^0-9]`)

func contactLinks(p Persona) []Link {
	var links []Link
	if p.Email != "" {
		links = append(links, Link{Text: "Send Email", URL: "mailto:" + p.Email})
	}
	if digits := nonDigits.ReplaceAllString(p.Phone, ""); digits != "" {
		links = append(links, Link{Text: "WhatsApp", URL: "https://wa.me/" + digits})
	}
	return links
}

func twitterLink(p Persona) []Link {
	handle := strings.TrimPrefix(strings.TrimSpace(p.Twitter), "@")
	if handle == "" {
		return nil
	}
	return []Link{{Text: "Twitter", URL: "https://twitter.com/" + handle}}
}

func containsAny(s string, needles ...string) bool {
	for _, needle := range needles {
		if strings.Contains(s, needle) {
			return true
		}
	}
	return false
}
