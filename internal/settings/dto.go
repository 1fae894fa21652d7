package settings

type NotificationPreferences struct {
	EnableEmailNotifications bool `json:"enable_email_notifications"`
	EnablePushNotifications  bool `json:"enable_push_notifications"`
	NotifyOnFraudDetection   bool `json:"notify_on_fraud_detection"`
}

type UpdateSettingsDTO struct {
	DefaultGracePeriod *int                     `json:"default_grace_period"`
	DefaultMaxAttempts *int                     `json:"default_max_attempts"`
	Notifications      *NotificationPreferences `json:"notifications"`
	PushToken          *string                  `json:"push_token"`
}
