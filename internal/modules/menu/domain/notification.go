package domain

// NotificationKind names a cart outcome shown to the shopper.
type NotificationKind string

const (
	NotificationAdded   NotificationKind = "added"
	NotificationRemoved NotificationKind = "removed"
	NotificationCleared NotificationKind = "cleared"
)

var notificationTexts = map[NotificationKind][2]string{
	NotificationAdded:   {"تمت الإضافة بنجاح", "Added successfully"},
	NotificationRemoved: {"تم الحذف", "Removed"},
	NotificationCleared: {"تم إفراغ السلة", "Cart cleared"},
}

// NotificationText returns the localized message for kind.
func NotificationText(kind NotificationKind, lang Language) string {
	texts, ok := notificationTexts[kind]
	if !ok {
		return ""
	}
	return pick(lang, texts[0], texts[1])
}
