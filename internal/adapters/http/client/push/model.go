package push

type NotificationBody struct {
	UserIDs []uint `json:"user_ids"`
	Title   string `json:"title"`
	Body    string `json:"body"`
	URL     string `json:"url,omitempty"`
}
