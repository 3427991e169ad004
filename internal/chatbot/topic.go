package chatbot

import "strings"

// Topic names the subject of a reply. The client echoes the last topic back
// so follow-up questions can be answered in context.
type Topic string

const (
	TopicNone               Topic = ""
	TopicGreeting           Topic = "greeting"
	TopicBackground         Topic = "background"
	TopicSkills             Topic = "skills"
	TopicProjects           Topic = "projects"
	TopicContact            Topic = "contact"
	TopicEducation          Topic = "education"
	TopicLocation           Topic = "location"
	TopicThanks             Topic = "thanks"
	TopicDetailedSkills     Topic = "detailed-skills"
	TopicDetailedProjects   Topic = "detailed-projects"
	TopicContactPreferences Topic = "contact-preferences"
	TopicFallback           Topic = "fallback"
)

var knownTopics = []Topic{
	TopicNone,
	TopicGreeting,
	TopicBackground,
	TopicSkills,
	TopicProjects,
	TopicContact,
	TopicEducation,
	TopicLocation,
	TopicThanks,
	TopicDetailedSkills,
	TopicDetailedProjects,
	TopicContactPreferences,
	TopicFallback,
}

// Topics lists every topic value, including the empty one.
func Topics() []Topic {
	return append([]Topic{}, knownTopics...)
}

// ParseTopic normalises raw and reports whether it names a known topic.
// "none" is accepted as an alias for the empty topic.
func ParseTopic(raw string) (Topic, bool) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "none" {
		return TopicNone, true
	}
	for _, topic := range knownTopics {
		if string(topic) == value {
			return topic, true
		}
	}
	return TopicNone, false
}
