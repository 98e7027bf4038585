/*
 * swpoll order publisher
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

// addjob publishes a poll order for the hosts given as arguments.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/telenornms/swpoll"
)

func main() {
	var configFile string
	var repeat time.Duration
	o := swpoll.Order{}
	flag.StringVar(&configFile, "f", "/etc/swpoll/swpoll.toml", "swpoll config file, for broker and queue")
	flag.StringVar(&o.Community, "c", "", "community, blank for the configured default")
	flag.StringVar(&o.ID, "i", "", "order id, passed through to the result")
	flag.BoolVar(&o.ClearMaps, "clear", false, "clear cached base port maps first")
	flag.DurationVar(&repeat, "repeat", -1, "publish again after this long, negative to publish once")
	flag.Parse()
	if err := swpoll.ParseConfig(configFile); err != nil {
		swpoll.Fatalf("Couldn't parse config: %s", err)
	}
	o.Targets = flag.Args()
	if err := o.Validate(); err != nil {
		swpoll.Fatalf("refusing to publish: %s", err)
	}
	b, err := json.Marshal(o)
	if err != nil {
		swpoll.Fatalf("failed to encode order: %s", err)
	}

	conn, err := amqp.Dial(swpoll.Config.Broker)
	if err != nil {
		swpoll.Fatalf("failed to connect to rabbitMQ: %s", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		swpoll.Fatalf("failed to connect to open a channel: %s", err)
	}
	defer ch.Close()

	q, err := ch.QueueDeclare(
		swpoll.Config.Queue, // name
		false,               // durable
		false,               // delete when unused
		false,               // exclusive
		false,               // no-wait
		nil,                 // arguments
	)
	if err != nil {
		swpoll.Fatalf("failed to declare a queue: %s", err)
	}
	for {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = ch.PublishWithContext(ctx,
			"",     // exchange
			q.Name, // routing key
			false,  // mandatory
			false,  // immediate
			amqp.Publishing{
				ContentType: "text/json",
				Expiration:  "10000",
				Body:        b,
			})
		cancel()
		if err != nil {
			swpoll.Fatalf("failed to publish a message: %s", err)
		}
		swpoll.Logf("Sent %s, %d bytes", o, len(b))
		if repeat < 0 {
			return
		}
		swpoll.Logf("Sleeping %s", repeat)
		time.Sleep(repeat)
	}
}
