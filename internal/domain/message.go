package domain

// Messenger — приемник игровых сообщений («The wall turns into mud!»).
type Messenger interface {
	Msg(text string)
}

// MessageFunc адаптирует функцию к Messenger.
type MessageFunc func(string)

func (f MessageFunc) Msg(text string) { f(text) }

// Discard — сообщения никуда не идут.
var Discard Messenger = MessageFunc(func(string) {})
