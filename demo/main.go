package main

import (
	"flag"
	"net/http"
	"os"
	ossignal "os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/qbits/fairq"
	promwriter "github.com/qbits/fairq/metrics/prometheus"
	"github.com/sirupsen/logrus"
)

var (
	addr      = flag.String("addr", ":8080", "HTTP listen address")
	workers   = flag.Uint("workers", 4, "dispatcher workers number")
	producers = flag.Uint("producers", 2, "producers number")
)

func main() {
	flag.Parse()

	log := logrus.StandardLogger()
	log.SetLevel(logrus.InfoLevel)

	d := fairq.NewDispatcher(&fairq.Config{
		Key:           "demo",
		Workers:       uint32(*workers),
		Worker:        fairq.DummyWorker{},
		MetricsWriter: promwriter.NewMetricsWriter("demo"),
		Logger:        log,
	})
	if d.Err != nil {
		log.Fatal("err ", d.Err)
	}

	pool := make([]*producer, *producers)
	for i := range pool {
		pool[i] = makeProducer(uint32(i), d)
		pool[i].start()
	}

	http.Handle("/metrics", promhttp.Handler())
	http.Handle("/api/v1/status", &statusHTTP{queue: d.Queue()})
	go func() {
		if err := http.ListenAndServe(*addr, nil); err != nil {
			log.Fatal("err ", err)
		}
	}()

	c := make(chan os.Signal, 1)
	ossignal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	<-c

	for i := range pool {
		pool[i].stop()
	}
	if err := d.Close(); err != nil {
		log.Error("err ", err)
	}
}
