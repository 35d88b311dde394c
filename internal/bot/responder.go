package bot

import (
	"math/rand"
	"sync"
	"time"
)

var topicReplies = map[Topic]string{
	TopicOrganizationalStructure: "Nuestra estructura organizacional está formada por los departamentos de Desarrollo, Diseño, Operaciones y Atención al Cliente, coordinados por la dirección general.",
	TopicMission:                 "Nuestra misión es ofrecer soluciones tecnológicas innovadoras que impulsen el crecimiento de nuestros clientes.",
	TopicVision:                  "Nuestra visión es ser la empresa líder en transformación digital de la región.",
	TopicProjects:                "Actualmente trabajamos en proyectos de automatización, aplicaciones web y plataformas de comercio electrónico. ¿Te interesa alguno en particular?",
	TopicServices:                "Ofrecemos desarrollo de software a medida, consultoría tecnológica, diseño UX/UI y soporte técnico especializado.",
	TopicContact:                 "Puedes contactarnos en contacto@solutiontech.com o al teléfono +52 55 1234 5678, de lunes a viernes de 9:00 a 18:00.",
	TopicDefault:                 "No estoy seguro de haber entendido. Puedo ayudarte con información sobre nuestra misión, visión, servicios, proyectos, estructura organizacional o datos de contacto.",
}

var attachmentReplies = []string{
	"¡Gracias! Recibí tu archivo correctamente.",
	"Archivo recibido, lo revisaré en un momento.",
	"¡Perfecto! Tu documento llegó sin problemas.",
	"He guardado tu archivo. ¿Hay algo más en lo que pueda ayudarte?",
}

// Responder synthesizes canned bot replies. The random source is injected so
// tests can pin the attachment-acknowledgement pick.
type Responder struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewResponder(rng *rand.Rand) *Responder {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Responder{rng: rng}
}

// Reply returns the canned response for topic. When the submission carried
// attachments the reply is drawn from the acknowledgement pool instead,
// independent of topic.
func (r *Responder) Reply(topic Topic, hasAttachments bool) string {
	if hasAttachments {
		r.mu.Lock()
		idx := r.rng.Intn(len(attachmentReplies))
		r.mu.Unlock()
		return attachmentReplies[idx]
	}

	reply, ok := topicReplies[topic]
	if !ok {
		return topicReplies[TopicDefault]
	}
	return reply
}

// TopicReply exposes the fixed reply table for callers that need to assert
// against exact canned texts.
func TopicReply(topic Topic) string {
	if reply, ok := topicReplies[topic]; ok {
		return reply
	}
	return topicReplies[TopicDefault]
}

// AttachmentReplies returns the acknowledgement pool.
func AttachmentReplies() []string {
	out := make([]string, len(attachmentReplies))
	copy(out, attachmentReplies)
	return out
}
