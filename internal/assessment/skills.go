package assessment

import (
	"empoweryouth-api/pkg/models"
	"empoweryouth-api/pkg/utils"
)

// skillRule maps one assessment tag to the skills it contributes.
type skillRule struct {
	tag    string
	skills []models.Skill
}

// Rule order is part of the contract: matched rules append their
// skills cumulatively, with no deduplication, in this order.
var skillRules = []skillRule{
	{tag: "Programming", skills: []models.Skill{
		{Name: "JavaScript", Level: 3},
		{Name: "Python", Level: 2},
	}},
	{tag: "Communication", skills: []models.Skill{
		{Name: "Communication", Level: 4},
		{Name: "English", Level: 4},
	}},
	{tag: "Data Analysis", skills: []models.Skill{
		{Name: "Excel", Level: 3},
		{Name: "SQL", Level: 2},
	}},
	{tag: "Design", skills: []models.Skill{
		{Name: "Photoshop", Level: 3},
		{Name: "Design", Level: 3},
	}},
	{tag: "Sales", skills: []models.Skill{
		{Name: "Sales", Level: 3},
		{Name: "Customer Service", Level: 3},
	}},
}

var interestRules = []skillRule{
	{tag: "Technology", skills: []models.Skill{
		{Name: "Problem Solving", Level: 3},
	}},
	{tag: "Business", skills: []models.Skill{
		{Name: "Leadership", Level: 2},
	}},
}

// defaultVector is returned when no rule matches.
var defaultVector = []models.Skill{
	{Name: "Communication", Level: 3},
	{Name: "Problem Solving", Level: 3},
	{Name: "Teamwork", Level: 3},
}

// DeriveSkillVector maps assessment answers to a skill vector through
// the fixed rule table. Every matched rule contributes its skills in
// rule order; when nothing matches the default triple is returned.
func DeriveSkillVector(answers models.AssessmentRequest) []models.Skill {
	var skills []models.Skill

	for _, rule := range skillRules {
		if utils.Contains(answers.Skills, rule.tag) {
			skills = append(skills, rule.skills...)
		}
	}

	for _, rule := range interestRules {
		if utils.Contains(answers.Interests, rule.tag) {
			skills = append(skills, rule.skills...)
		}
	}

	if len(skills) == 0 {
		out := make([]models.Skill, len(defaultVector))
		copy(out, defaultVector)
		return out
	}

	return skills
}
