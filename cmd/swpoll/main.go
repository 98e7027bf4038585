/*
 * swpoll switch poller
 *
 * Copyright (c) 2022 Telenor Norge AS
 * Author(s):
 *  - Kristian Lyngstøl <kly@kly.no>
 *
 * This library is free software; you can redistribute it and/or
 * modify it under the terms of the GNU Lesser General Public
 * License as published by the Free Software Foundation; either
 * version 2.1 of the License, or (at your option) any later version.
 *
 * This library is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
 * Lesser General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General Public
 * License along with this library; if not, write to the Free Software
 * Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston, MA
 * 02110-1301  USA
 */

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/url"
	"strings"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	sconfig "github.com/telenornms/skogul/config"
	"github.com/telenornms/swpoll"
	"github.com/telenornms/swpoll/export"
	"github.com/telenornms/swpoll/poller"
	"github.com/telenornms/swpoll/profile"
	"github.com/telenornms/swpoll/session"
)

// Engine is the long lived state shared by every listener.
type Engine struct {
	Skogul *sconfig.Config // output
	Output export.Handler
	Poller *poller.Poller
}

// Init reads the skogul config and sets up the poller.
func (e *Engine) Init(sc string) error {
	var err error
	e.Skogul, err = sconfig.Path(sc)
	if err != nil {
		return fmt.Errorf("skogul-config failed loading: %w", err)
	}
	h := e.Skogul.Handlers[swpoll.Config.Handler]
	if h == nil {
		return fmt.Errorf("missing %s handler in skogul config", swpoll.Config.Handler)
	}
	e.Output = &h.Handler
	e.Poller = poller.New(profile.DefaultRegistry(), session.Opener(session.ConfigCredentials()))
	return nil
}

// Run polls every target of an order and ships the result. The order
// fails only if no target could be polled, partial results are sent.
func (e *Engine) Run(o Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.ClearMaps {
		swpoll.Logf("Clearing base port maps on request")
		e.Poller.Options.BasePorts.Clear("")
	}
	p := *e.Poller
	p.Community = o.Community
	store, rep := p.PollAll(o.Targets)
	swpoll.Debugf("%s", rep)
	if rep.Success == 0 {
		return fmt.Errorf("no targets polled")
	}
	c := export.Container(store.Devices(), time.Now())
	if o.ID != "" {
		for _, m := range c.Metrics {
			m.Metadata["id"] = o.ID
		}
	}
	if err := e.Output.TransformAndSend(c); err != nil {
		return fmt.Errorf("send failed: %w", err)
	}
	return nil
}

// Order is a swpoll.Order with the delivery it came in.
type Order struct {
	swpoll.Order
	delivery amqp.Delivery
}

func (e *Engine) Listener(c chan Order, name string) {
	swpoll.Debugf("Starting listener %s...", name)
	for order := range c {
		now := time.Now()
		err := e.Run(order)
		since := time.Since(now).Round(time.Millisecond * 10)
		if err != nil {
			requeue := true
			if order.delivery.Redelivered {
				requeue = false
			}
			swpoll.Logf("[%2s]: %-15s FAIL %s: %s (requeue: %v)", name, order, since.String(), err, requeue)
			if requeue {
				delayR := rand.Int() % 10
				d := time.Second*1 + time.Second*time.Duration(delayR)
				swpoll.Debugf("Sleeping %v before NACK/requeue", d)
				time.Sleep(d)
			}
			err2 := order.delivery.Nack(false, requeue)
			if err2 != nil {
				swpoll.Logf("NAck failed: %s", err2)
			}
		} else {
			swpoll.Logf("[%2s]: %-15s OK %s", name, order, since.String())
			err2 := order.delivery.Ack(false)
			if err2 != nil {
				swpoll.Logf("Ack failed: %s", err2)
			}
		}
	}
}

// oneshot polls hosts once, without a broker, and exits.
func (e *Engine) oneshot(hosts string) {
	o := Order{}
	for _, h := range strings.Split(hosts, ",") {
		if h = strings.TrimSpace(h); h != "" {
			o.Targets = append(o.Targets, h)
		}
	}
	if err := e.Run(o); err != nil {
		swpoll.Fatalf("%s FAIL: %s", o, err)
	}
}

func main() {
	var configFile, hosts string
	flag.BoolVar(&swpoll.Config.Debug, "debug", false, "enable debug")
	flag.StringVar(&configFile, "f", "/etc/swpoll/swpoll.toml", "swpoll config file")
	flag.StringVar(&hosts, "hosts", "", "poll these comma separated hosts once and exit")
	flag.Parse()
	if err := swpoll.ParseConfig(configFile); err != nil {
		swpoll.Fatalf("Couldn't parse config: %s", err)
	}
	swpoll.Debugf("Read config file: %s", configFile)
	swpoll.Init()
	e := Engine{}
	err := e.Init(swpoll.Config.OutputConfig)
	if err != nil {
		swpoll.Fatalf("Couldn't initialize engine: %s", err)
	}
	if hosts != "" {
		e.oneshot(hosts)
		return
	}
	c := make(chan Order, 0)
	for i := 0; i < swpoll.Config.Workers; i++ {
		go e.Listener(c, fmt.Sprintf("%d", i))
		time.Sleep(time.Microsecond * 20)
	}
	swpoll.Logf("Started %d workers", swpoll.Config.Workers)
	amUrl, err := url.Parse(swpoll.Config.Broker)
	if err != nil {
		swpoll.Fatalf("Can't parse broker url: %s", err)
	}
	swpoll.Debugf("Connecting to broker: %v", amUrl.Redacted())
	conn, err := amqp.Dial(swpoll.Config.Broker)
	if err != nil {
		swpoll.Fatalf("can't connect to broker: %s", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		swpoll.Fatalf("can't get channel: %s", err)
	}
	defer ch.Close()
	err = ch.Qos(swpoll.Config.Workers+1, 0, true)
	if err != nil {
		swpoll.Fatalf("can't set qos: %s", err)
	}

	q, err := ch.QueueDeclare(
		swpoll.Config.Queue, // name
		false,               // durable
		false,               // delete when unused
		false,               // exclusive
		false,               // no-wait
		nil,                 // arguments
	)
	if err != nil {
		swpoll.Fatalf("can't declare queue: %s", err)
	}

	msgs, err := ch.Consume(
		q.Name, // queue
		"",     // consumer
		false,  // auto-ack
		false,  // exclusive
		false,  // no-local
		false,  // no-wait
		nil,    // args
	)
	if err != nil {
		swpoll.Fatalf("can't register consumer: %s", err)
	}
	swpoll.Logf("Listening for orders")
	for d := range msgs {
		order := Order{}
		err = json.Unmarshal(d.Body, &order.Order)
		if err != nil {
			swpoll.Logf("order json unmarshal: %s", err)
			d.Reject(false)
			continue
		}
		order.delivery = d
		c <- order
	}
	swpoll.Logf("Reached the end. Connection probably dead.")
}
