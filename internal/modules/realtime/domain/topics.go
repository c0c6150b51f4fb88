package domain

import "strings"

const (
	SystemEntity     = "system"
	StorefrontEntity = "storefront"

	TopicSystemConnected = SystemEntity + ".connected"
	TopicSystemPong      = SystemEntity + ".pong"
	TopicSystemError     = SystemEntity + ".error"

	ActionConnected = "connected"
	ActionPong      = "pong"
	ActionError     = "error"
	ActionUpdated   = "updated"
	ActionShown     = "shown"
	ActionCleared   = "cleared"
	ActionSnapshot  = "snapshot"
	ActionSlide     = "slide"
	ActionPhrase    = "phrase"

	ActionBottomSlide  = "bottom-slide"
	ActionAnnouncement = "announcement"
)

// Live entities the change feed carries.
const (
	EntityLanguage     = "language"
	EntityCategories   = "categories"
	EntityProducts     = "products"
	EntityConfig       = "config"
	EntityUsers        = "users"
	EntitySession      = "session"
	EntityCart         = "cart"
	EntityNotification = "notification"
)

var (
	TopicStorefrontSnapshot = CustomTopic(StorefrontEntity, ActionSnapshot)
	TopicSliderTick         = CustomTopic(StorefrontEntity, ActionSlide)
	TopicBottomSliderTick   = CustomTopic(StorefrontEntity, ActionBottomSlide)
	TopicPhraseTick         = CustomTopic(StorefrontEntity, ActionPhrase)
	TopicAnnouncement       = CustomTopic(StorefrontEntity, ActionAnnouncement)
)

// UpdatedTopic returns the canonical updated topic for the given entity.
func UpdatedTopic(entity string) string {
	return buildEntityTopic(entity, ActionUpdated)
}

// CustomTopic returns the canonical topic for the given entity and action.
func CustomTopic(entity, action string) string {
	return buildEntityTopic(entity, action)
}

// StorefrontTopics are the change topics a public storefront view renders.
func StorefrontTopics() []string {
	return []string{
		UpdatedTopic(EntityLanguage),
		UpdatedTopic(EntityCategories),
		UpdatedTopic(EntityProducts),
		UpdatedTopic(EntityConfig),
		UpdatedTopic(EntityCart),
		CustomTopic(EntityNotification, ActionShown),
		CustomTopic(EntityNotification, ActionCleared),
		TopicAnnouncement,
	}
}

// NotificationTopics are the topics streamed on the notifications socket.
func NotificationTopics() []string {
	return []string{
		UpdatedTopic(EntityCart),
		CustomTopic(EntityNotification, ActionShown),
		CustomTopic(EntityNotification, ActionCleared),
	}
}

// SplitTopic returns the entity and action parts of entity.action.
func SplitTopic(topic string) (string, string) {
	idx := strings.LastIndex(topic, ".")
	if idx <= 0 || idx == len(topic)-1 {
		return strings.TrimSpace(topic), ""
	}
	return strings.TrimSpace(topic[:idx]), strings.TrimSpace(topic[idx+1:])
}

func buildEntityTopic(entity, action string) string {
	cleanEntity := strings.TrimSpace(entity)
	cleanAction := strings.TrimSpace(action)
	if cleanEntity == "" || cleanAction == "" {
		return ""
	}
	return cleanEntity + "." + cleanAction
}
