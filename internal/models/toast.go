package models

type ToastType string

const (
	ToastInfo    ToastType = "info"
	ToastSuccess ToastType = "success"
	ToastWarning ToastType = "warning"
	ToastError   ToastType = "error"
)

// Toast is a transient notification. ID is a monotonic unix-millisecond
// timestamp assigned by the UI store at insertion.
type Toast struct {
	ID      int64     `json:"id"`
	Type    ToastType `json:"type"`
	Message string    `json:"message"`
}
