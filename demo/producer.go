package main

import (
	"time"

	"github.com/google/uuid"
	"github.com/qbits/fairq"
)

type status uint
type signal uint

const (
	statusIdle   status = 0
	statusActive status = 1

	signalInit signal = 0
	signalStop signal = 1
)

type producer struct {
	idx    uint32
	ctl    chan signal
	status status
	queue  fairq.Enqueuer
}

func makeProducer(idx uint32, queue fairq.Enqueuer) *producer {
	p := &producer{
		idx:    idx,
		ctl:    make(chan signal, 1),
		status: statusIdle,
		queue:  queue,
	}
	return p
}

func (p *producer) start() {
	go p.produce()
	p.ctl <- signalInit
}

func (p *producer) stop() {
	p.ctl <- signalStop
}

func (p *producer) produce() {
	tick := time.NewTicker(time.Millisecond * 50)
	defer tick.Stop()
	for {
		select {
		case sig := <-p.ctl:
			switch sig {
			case signalInit:
				p.status = statusActive
				ProducerStartMetric("demo")
			case signalStop:
				p.status = statusIdle
				ProducerStopMetric("demo")
				return
			}
		case <-tick.C:
			if p.status == statusActive {
				_ = p.queue.Enqueue(uuid.New().String())
			}
		}
	}
}
