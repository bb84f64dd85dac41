package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/guinchoja/backend/internal/pkg/constants"
	"github.com/guinchoja/backend/internal/pkg/logger"
	"github.com/guinchoja/backend/internal/pkg/models"
	"github.com/guinchoja/backend/internal/pkg/poller"
	"github.com/guinchoja/backend/internal/pkg/session"
)

func runLogin(client *relayClient, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return fmt.Errorf("-email and -password are required")
	}

	resp, err := client.Login(context.Background(), *email, *password)
	if err != nil {
		return err
	}

	err = client.store.Save(&session.Session{
		UserID:    resp.ID,
		AddressID: resp.AddressID,
		Role:      resp.Type,
		Email:     *email,
		Token:     resp.Token,
		ExpiresAt: resp.ExpiresAt,
	})
	if err != nil {
		return err
	}
	fmt.Printf("logged in as %s (%s)\n", resp.ID, resp.Type)
	return nil
}

func runRegister(client *relayClient, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	var req models.RegisterRequest
	fs.StringVar(&req.Type, "tipo", "", "account type: Motorista or Guincho")
	fs.StringVar(&req.Username, "username", "", "username")
	fs.StringVar(&req.Email, "email", "", "email")
	fs.StringVar(&req.Password, "password", "", "password")
	fs.StringVar(&req.Phone, "phone", "", "phone number")
	fs.StringVar(&req.Document, "cpf", "", "CPF or CNPJ")
	fs.StringVar(&req.LicensePlate, "placa", "", "license plate (providers)")
	fs.StringVar(&req.Model, "modelo", "", "truck model (providers)")
	fs.StringVar(&req.CNH, "cnh", "", "driver license (providers)")
	fs.StringVar(&req.BirthDate, "nascimento", "", "birth date")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := client.Register(context.Background(), &req)
	if err != nil {
		return err
	}
	fmt.Printf("account created: %s\n", user.ID)
	return nil
}

func runWhoami(client *relayClient) error {
	s, err := client.mustSession()
	if err != nil {
		return err
	}
	user, err := client.Profile(context.Background(), s.UserID)
	if err != nil {
		// The profile endpoint needs a live relay; the saved identity is
		// still worth showing.
		fmt.Printf("%s (%s), profile unavailable: %v\n", s.UserID, s.Role, err)
		return nil
	}
	return printJSON(user)
}

func runProviders(client *relayClient, args []string) error {
	fs := flag.NewFlagSet("providers", flag.ExitOnError)
	from := fs.String("from", "", "requester position as \"lat,long\"")
	to := fs.String("to", "", "destination as \"lat,long\"")
	if err := fs.Parse(args); err != nil {
		return err
	}

	providers, err := client.ActiveProviders(context.Background(), *from, *to)
	if err != nil {
		return err
	}
	if len(providers) == 0 {
		fmt.Println("no providers available")
		return nil
	}
	for _, p := range providers {
		if p.EtaMinutes > 0 || p.Price > 0 {
			fmt.Printf("%-36s %-20s %6.1f km away, R$ %.2f, ~%d min\n",
				p.ID, p.Name, p.DistanceKm, p.Price, p.EtaMinutes)
		} else {
			fmt.Printf("%-36s %-20s\n", p.ID, p.Name)
		}
	}
	return nil
}

// runRequest ranks providers, opens a request against the nearest one and
// then follows it the way the mobile screen does, one poll every interval.
func runRequest(client *relayClient, log *logger.ZapLogger, args []string) error {
	fs := flag.NewFlagSet("request", flag.ExitOnError)
	from := fs.String("from", "", "requester position as \"lat,long\"")
	to := fs.String("to", "", "destination as \"lat,long\"")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *from == "" || *to == "" {
		return fmt.Errorf("-from and -to are required")
	}

	s, err := client.mustSession()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	providers, err := client.ActiveProviders(ctx, *from, *to)
	if err != nil {
		return err
	}
	if len(providers) == 0 {
		return fmt.Errorf("no providers available near %s", *from)
	}
	best := providers[0]
	if best.Location == nil {
		return fmt.Errorf("provider %s has no usable position", best.ID)
	}
	fmt.Printf("requesting %s: %.1f km away, R$ %.2f, ~%d min\n",
		best.Name, best.DistanceKm, best.Price, best.EtaMinutes)

	payload := &models.RequestPayload{
		RequesterID: s.UserID,
		ProviderID:  best.ID,
		Distance:    fmt.Sprintf("%.2f", best.TotalDistanceKm),
		Price:       fmt.Sprintf("%.2f", best.Price),
		RequesterLL: *from,
		ProviderLL:  best.Location.LatLong(),
		Status:      constants.StatusPendente,
		Destination: *to,
	}
	req, err := client.CreateRequest(ctx, payload)
	if err != nil {
		return err
	}
	fmt.Printf("request %s created, waiting for the provider\n", req.ID)

	return followRequest(ctx, client, log, req.ID)
}

func runWatch(client *relayClient, log *logger.ZapLogger, args []string) error {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	id := fs.String("id", "", "request id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("-id is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return followRequest(ctx, client, log, *id)
}

// followRequest polls the merged ride view until it reaches a terminal
// state, announcing each phase once.
func followRequest(ctx context.Context, client *relayClient, log *logger.ZapLogger, requestID string) error {
	fetch := func(ctx context.Context) (poller.Snapshot, error) {
		req, err := client.GetRide(ctx, requestID)
		if err != nil {
			return poller.Snapshot{}, err
		}
		return poller.Snapshot{Status: req.Status, Data: req}, nil
	}

	w := poller.New(poller.DefaultConfig(), fetch, log)
	w.On(models.StatusAccepted, func(snap poller.Snapshot) {
		req := snap.Data.(*models.ServiceRequest)
		fmt.Printf("accepted by %s, pickup code %s\n", req.ProviderID, req.StartCode)
	})
	w.On(models.StatusInTransit, func(snap poller.Snapshot) {
		req := snap.Data.(*models.ServiceRequest)
		fmt.Printf("under way, drop-off code %s\n", req.EndCode)
	})
	w.OnFinal(models.StatusCompleted, func(snap poller.Snapshot) {
		req := snap.Data.(*models.ServiceRequest)
		fmt.Printf("completed: %.2f km, R$ %.2f\n", req.DistanceKm, req.Price)
	})
	w.OnFinal(models.StatusRejected, func(poller.Snapshot) {
		fmt.Println("provider declined the request")
	})
	w.OnFinal(models.StatusCancelled, func(poller.Snapshot) {
		fmt.Println("request was cancelled")
	})

	w.Start(ctx)
	<-w.Done()
	return w.Err()
}

func runCancel(client *relayClient, args []string) error {
	fs := flag.NewFlagSet("cancel", flag.ExitOnError)
	id := fs.String("id", "", "request id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("-id is required")
	}

	req, err := client.UpdateRequest(context.Background(), *id, models.StatusCancelled)
	if err != nil {
		return err
	}
	fmt.Printf("request %s is now %s\n", req.ID, req.Status)
	return nil
}

func runRide(client *relayClient, args []string) error {
	fs := flag.NewFlagSet("ride", flag.ExitOnError)
	id := fs.String("id", "", "request id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("-id is required")
	}

	req, err := client.GetRide(context.Background(), *id)
	if err != nil {
		return err
	}
	return printJSON(req)
}

func runHistory(client *relayClient) error {
	s, err := client.mustSession()
	if err != nil {
		return err
	}

	query := &models.HistoryQuery{}
	if s.Role == constants.AccountTypeProvider {
		query.ProviderID = s.UserID
	} else {
		query.RequesterID = s.UserID
	}

	rides, err := client.History(context.Background(), query)
	if err != nil {
		return err
	}
	if len(rides) == 0 {
		fmt.Println("no completed rides")
		return nil
	}
	for _, r := range rides {
		fmt.Printf("%s  %6.1f km  R$ %8.2f  %s\n",
			r.CompletedAt.Format("2006-01-02 15:04"), r.DistanceKm, r.Price, r.RequestID)
	}
	return nil
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
