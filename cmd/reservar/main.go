// Command reservar walks a reservation through the form, Pago Móvil payment
// and pending confirmation against a running intake server.
//
//	reservar -draft visita.json -receipt captura.png -reference 123456
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

func main() {
	var opts options
	flag.StringVar(&opts.Server, "server", "http://localhost:8080", "intake server base URL")
	flag.StringVar(&opts.DraftPath, "draft", "", "JSON file with the reservation form fields")
	flag.StringVar(&opts.Category, "category", "general", "reservation category (general, small_groups)")
	flag.StringVar(&opts.ReceiptPath, "receipt", "", "payment screenshot image")
	flag.StringVar(&opts.Reference, "reference", "", "Pago Móvil transaction reference")
	flag.DurationVar(&opts.Timeout, "timeout", 30*time.Second, "HTTP timeout per request")
	flag.Parse()

	if opts.DraftPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	_ = godotenv.Load()
	var env cliEnv
	if err := envconfig.Process("", &env); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, env, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "reservar: %v\n", err)
		stop()
		os.Exit(1)
	}
}
