package email

// Provider определяет интерфейс для отправки email
type Provider interface {
	// Send отправляет простое email сообщение
	Send(to, subject, body string) error

	// SendMatchNotification отправляет письмо о новом взаимном совпадении
	SendMatchNotification(to, counterpartName string) error
}
