package chat

import (
	"strings"
)

// replyRule maps substring triggers to one canned reply. Matching is
// case-insensitive; the first rule with any matching trigger wins, so
// the rule order below is a contract — reordering changes observable
// behavior.
type replyRule struct {
	triggers []string
	reply    string
}

var replyRules = []replyRule{
	{
		triggers: []string{"resume", "cv"},
		reply:    "Here are some resume tips: 1) Keep it concise and relevant 2) Highlight achievements with numbers 3) Use action verbs 4) Tailor it for each job. Would you like specific advice for any section?",
	},
	{
		triggers: []string{"interview"},
		reply:    "Interview preparation tips: 1) Research the company thoroughly 2) Practice common questions 3) Prepare STAR method examples 4) Ask thoughtful questions. What type of interview are you preparing for?",
	},
	{
		triggers: []string{"career", "job"},
		reply:    "I can help with career guidance! Based on your profile, I see opportunities in technology and business. What specific career questions do you have?",
	},
	{
		triggers: []string{"skill", "learn"},
		reply:    "Skill development is crucial for career growth. Based on current market trends, I recommend focusing on: 1) Digital skills (programming, data analysis) 2) Soft skills (communication, leadership) 3) Industry-specific skills. What area interests you most?",
	},
	{
		triggers: []string{"salary", "pay"},
		reply:    "Salary expectations should be based on: 1) Industry standards 2) Your experience level 3) Location 4) Company size. For fresher roles in India, expect 2-6 LPA depending on skills and industry. Would you like specific salary insights?",
	},
}

const fallbackReply = "I'm here to help with your career journey! You can ask me about job search strategies, resume writing, interview preparation, skill development, or career planning. What would you like to know?"

const assistantPlaceholder = "Assistant integration will be available once API keys are configured."

// Responder maps a free-text message to a canned reply. When an
// external assistant credential is configured it returns a placeholder
// instead of generating a reply.
type Responder struct {
	assistantConfigured bool
}

// NewResponder creates a responder. assistantConfigured reflects
// whether an external assistant credential is present.
func NewResponder(assistantConfigured bool) *Responder {
	return &Responder{assistantConfigured: assistantConfigured}
}

// Respond returns the reply for a message. The language parameter is
// accepted for the wire contract but does not affect rule matching.
func (r *Responder) Respond(message, language string) string {
	_ = language

	if r.assistantConfigured {
		return assistantPlaceholder
	}

	lower := strings.ToLower(message)
	for _, rule := range replyRules {
		for _, trigger := range rule.triggers {
			if strings.Contains(lower, trigger) {
				return rule.reply
			}
		}
	}

	return fallbackReply
}
