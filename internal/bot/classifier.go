package bot

import (
	"regexp"
	"strings"
)

type Topic string

const (
	TopicOrganizationalStructure Topic = "organizational-structure"
	TopicMission                 Topic = "mission"
	TopicVision                  Topic = "vision"
	TopicProjects                Topic = "projects"
	TopicServices                Topic = "services"
	TopicContact                 Topic = "contact"
	TopicDefault                 Topic = "default"
)

type topicRule struct {
	topic    Topic
	keyword  string
	synonyms *regexp.Regexp
}

// Rules are tried in this exact order. A canonical keyword hit on any topic
// wins over every synonym hit, so the synonym pass only runs when no keyword
// matched at all.
var topicRules = []topicRule{
	{
		topic:    TopicOrganizationalStructure,
		keyword:  "estructura organizacional",
		synonyms: regexp.MustCompile(`equipo|departamentos?|organigrama|jerarqu[ií]a|[aá]reas de la empresa`),
	},
	{
		topic:    TopicMission,
		keyword:  "misión",
		synonyms: regexp.MustCompile(`mision|prop[oó]sito|raz[oó]n de ser`),
	},
	{
		topic:    TopicVision,
		keyword:  "visión",
		synonyms: regexp.MustCompile(`vision|futuro de la empresa|a d[oó]nde van|largo plazo`),
	},
	{
		topic:    TopicProjects,
		keyword:  "proyectos",
		synonyms: regexp.MustCompile(`proyecto|portafolio|casos de [eé]xito|trabajos realizados`),
	},
	{
		topic:    TopicServices,
		keyword:  "servicios",
		synonyms: regexp.MustCompile(`servicio|qu[eé] ofrecen|qu[eé] hacen|soluciones|productos`),
	},
	{
		topic:    TopicContact,
		keyword:  "contacto",
		synonyms: regexp.MustCompile(`contactar|tel[eé]fono|correo|email|direcci[oó]n|ubicaci[oó]n|horario`),
	},
}

// Classify maps free text to a topic. It is a pure function: the same input
// always yields the same topic regardless of call order.
func Classify(text string) Topic {
	input := strings.ToLower(strings.TrimSpace(text))
	if input == "" {
		return TopicDefault
	}

	for _, rule := range topicRules {
		if strings.Contains(input, rule.keyword) {
			return rule.topic
		}
	}
	for _, rule := range topicRules {
		if rule.synonyms.MatchString(input) {
			return rule.topic
		}
	}
	return TopicDefault
}
