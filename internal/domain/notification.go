package domain

type NotificationType string

const (
	NotificationType_Maturity30Days NotificationType = "maturity_30_days"
	NotificationType_Maturity7Days  NotificationType = "maturity_7_days"
	NotificationType_MaturityToday  NotificationType = "maturity_today"
)

type NotificationStatus string

const (
	NotificationStatus_Pending   NotificationStatus = "pending"
	NotificationStatus_Displayed NotificationStatus = "displayed"
	NotificationStatus_Dismissed NotificationStatus = "dismissed"
)
