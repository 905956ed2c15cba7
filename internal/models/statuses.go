package models

type Role string
type SwipeDirection string
type SwipeStatus string
type Availability string
type ItemType string

const (
	RoleWorker   Role = "worker"
	RoleEmployer Role = "employer"

	SwipeDirectionLeft  SwipeDirection = "left"
	SwipeDirectionRight SwipeDirection = "right"

	// left-свайп терминален: rejected никогда не пересматривается
	SwipeStatusRejected SwipeStatus = "rejected"
	SwipeStatusPending  SwipeStatus = "pending"
	SwipeStatusMatched  SwipeStatus = "matched"

	AvailabilityFullTime Availability = "full-time"
	AvailabilityPartTime Availability = "part-time"
	AvailabilityContract Availability = "contract"

	// Тип элемента свайпа: анкета работника или вакансия
	ItemTypeWorker ItemType = "worker"
	ItemTypeJob    ItemType = "job"
)
