package dto

// SubscribeRequest is the JSON body for POST /push/subscribe. It
// mirrors the browser PushSubscription shape.
type SubscribeRequest struct {
	Endpoint string `json:"endpoint" binding:"required,url"`
	Keys     struct {
		P256dh string `json:"p256dh" binding:"required"`
		Auth   string `json:"auth" binding:"required"`
	} `json:"keys" binding:"required"`
}

// SubscribeResponse acknowledges a stored subscription.
type SubscribeResponse struct {
	ID string `json:"id"`
}

// PublicKeyResponse hands the browser the VAPID application server key.
type PublicKeyResponse struct {
	PublicKey string `json:"public_key"`
}

// DeliveryResult reports one push attempt from a due scan.
type DeliveryResult struct {
	TaskID   string `json:"task_id"`
	Endpoint string `json:"endpoint"`
	Sent     bool   `json:"sent"`
}

// CheckDueTasksResponse is the cron trigger's report.
type CheckDueTasksResponse struct {
	Success       bool             `json:"success"`
	CheckedTasks  int              `json:"checked_tasks"`
	Notifications []DeliveryResult `json:"notifications"`
}
