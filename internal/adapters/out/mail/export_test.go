package mail

import "gopkg.in/gomail.v2"

func NewNotifierWithSender(s interface {
	DialAndSend(m ...*gomail.Message) error
}, from string) *Notifier {
	return &Notifier{sender: s, from: from}
}
