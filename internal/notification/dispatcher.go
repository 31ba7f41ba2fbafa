package notification

import "log"

type SmsStatus string

const (
	StatusPending SmsStatus = "pending"
	StatusSent    SmsStatus = "sent"
	StatusFailed  SmsStatus = "failed"
)

type Event struct {
	AppointmentID uint
	PhoneNumber   string
	Message       string
}

// Dispatcher writes SMS rows off the request path through a single
// worker. A full queue drops the event; a lost notification row must
// never fail the booking.
type Dispatcher struct {
	writer *Writer
	queue  chan Event
}

func NewDispatcher(writer *Writer) *Dispatcher {
	d := &Dispatcher{
		writer: writer,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.writer.Write(ev); err != nil {
			log.Println("sms notification error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		log.Println("sms queue full, dropping notification")
	}
}
