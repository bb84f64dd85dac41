package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guinchoja/backend/internal/pkg/constants"
	"github.com/guinchoja/backend/internal/pkg/logger"
	"github.com/guinchoja/backend/internal/pkg/models"
	"github.com/guinchoja/backend/internal/pkg/poller"
	"github.com/guinchoja/backend/internal/pkg/session"
)

// runOnline puts the provider on shift: marks it available, pushes a
// simulated position at the polling cadence and watches the inbox. With
// -accept it plays the whole job out on its own, confirming pickup and
// drop-off with the codes from the ride view.
func runOnline(client *relayClient, log *logger.ZapLogger, args []string) error {
	fs := flag.NewFlagSet("online", flag.ExitOnError)
	at := fs.String("at", "-23.5505,-46.6333", "starting position as \"lat,long\"")
	autoAccept := fs.Bool("accept", false, "accept and complete incoming jobs automatically")
	if err := fs.Parse(args); err != nil {
		return err
	}

	s, err := client.mustSession()
	if err != nil {
		return err
	}
	if s.Role != constants.AccountTypeProvider {
		return fmt.Errorf("online requires a %s account, session is %s", constants.AccountTypeProvider, s.Role)
	}

	position, err := models.ParseLatLong(*at)
	if err != nil {
		return fmt.Errorf("invalid -at position: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := client.SetAvailability(ctx, s.UserID, true); err != nil {
		return err
	}
	fmt.Println("online, waiting for requests (Ctrl-C to go offline)")
	defer func() {
		offCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.SetAvailability(offCtx, s.UserID, false); err != nil {
			fmt.Fprintf(os.Stderr, "failed to go offline: %v\n", err)
		} else {
			fmt.Println("offline")
		}
	}()

	go pushLocationLoop(ctx, client, s, position)

	for {
		requestID, err := waitForRequest(ctx, client, log, s.UserID)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
		if requestID == "" {
			return nil
		}

		if !*autoAccept {
			fmt.Printf("incoming request %s, answer with `agent decide -id %s -accept=true`\n",
				requestID, requestID)
			continue
		}
		if err := handleJob(ctx, client, log, requestID); err != nil {
			fmt.Fprintf(os.Stderr, "job %s failed: %v\n", requestID, err)
		}
	}
}

// pushLocationLoop reports a slowly drifting position until the context
// ends, the way the app streams GPS fixes while the truck idles.
func pushLocationLoop(ctx context.Context, client *relayClient, s *session.Session, position *models.Location) {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			position.Latitude += (rand.Float64() - 0.5) / 1000
			position.Longitude += (rand.Float64() - 0.5) / 1000

			payload := &models.LocationUpdatePayload{
				ProviderID: s.UserID,
				AddressID:  s.AddressID,
				LatLong:    position.LatLong(),
			}
			if err := client.PushLocation(ctx, payload); err != nil && ctx.Err() == nil {
				fmt.Fprintf(os.Stderr, "location push failed: %v\n", err)
			}
		}
	}
}

// waitForRequest polls the inbox until a pending request shows up. An
// empty id means the watcher stopped without seeing one.
func waitForRequest(ctx context.Context, client *relayClient, log *logger.ZapLogger, providerID string) (string, error) {
	fetch := func(ctx context.Context) (poller.Snapshot, error) {
		reqs, err := client.PendingForProvider(ctx, providerID)
		if err != nil {
			return poller.Snapshot{}, err
		}
		if len(reqs) == 0 {
			return poller.Snapshot{Status: models.StatusUnknown}, nil
		}
		return poller.Snapshot{Status: models.StatusPending, Data: reqs[0]}, nil
	}

	var requestID string
	w := poller.New(poller.DefaultConfig(), fetch, log)
	w.OnFinal(models.StatusPending, func(snap poller.Snapshot) {
		req := snap.Data.(models.ServiceRequest)
		requestID = req.ID
		fmt.Printf("request %s: %.1f km for R$ %.2f\n", req.ID, req.DistanceKm, req.Price)
	})

	w.Start(ctx)
	<-w.Done()
	if err := w.Err(); err != nil {
		return "", err
	}
	if requestID == "" && ctx.Err() != nil {
		return "", ctx.Err()
	}
	return requestID, nil
}

// handleJob accepts the request and walks it through pickup and drop-off,
// reading the validation codes off the ride view as each phase unlocks.
func handleJob(ctx context.Context, client *relayClient, log *logger.ZapLogger, requestID string) error {
	req, err := client.UpdateRequest(ctx, requestID, models.StatusAccepted)
	if err != nil {
		return fmt.Errorf("accept: %w", err)
	}
	fmt.Printf("accepted %s (%s)\n", req.ID, req.Status)

	fetch := func(ctx context.Context) (poller.Snapshot, error) {
		ride, err := client.GetRide(ctx, requestID)
		if err != nil {
			return poller.Snapshot{}, err
		}
		return poller.Snapshot{Status: ride.Status, Data: ride}, nil
	}

	w := poller.New(poller.DefaultConfig(), fetch, log)
	w.On(models.StatusAccepted, func(snap poller.Snapshot) {
		ride := snap.Data.(*models.ServiceRequest)
		if _, err := client.UpdateRide(ctx, requestID, models.StatusInTransit, ride.StartCode); err != nil {
			fmt.Fprintf(os.Stderr, "pickup confirmation failed: %v\n", err)
		} else {
			fmt.Println("pickup confirmed, en route")
		}
	})
	w.On(models.StatusInTransit, func(snap poller.Snapshot) {
		ride := snap.Data.(*models.ServiceRequest)
		if _, err := client.UpdateRide(ctx, requestID, models.StatusCompleted, ride.EndCode); err != nil {
			fmt.Fprintf(os.Stderr, "drop-off confirmation failed: %v\n", err)
		}
	})
	w.OnFinal(models.StatusCompleted, func(snap poller.Snapshot) {
		ride := snap.Data.(*models.ServiceRequest)
		fmt.Printf("job done: %.2f km, R$ %.2f\n", ride.DistanceKm, ride.Price)
	})
	w.OnFinal(models.StatusCancelled, func(poller.Snapshot) {
		fmt.Println("requester cancelled the job")
	})

	w.Start(ctx)
	<-w.Done()
	return w.Err()
}

func runOffline(client *relayClient) error {
	s, err := client.mustSession()
	if err != nil {
		return err
	}
	if err := client.SetAvailability(context.Background(), s.UserID, false); err != nil {
		return err
	}
	fmt.Println("offline")
	return nil
}

func runDecide(client *relayClient, args []string) error {
	fs := flag.NewFlagSet("decide", flag.ExitOnError)
	id := fs.String("id", "", "request id")
	accept := fs.Bool("accept", false, "accept the request")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("-id is required")
	}

	status := models.StatusRejected
	if *accept {
		status = models.StatusAccepted
	}
	req, err := client.UpdateRequest(context.Background(), *id, status)
	if err != nil {
		return err
	}
	fmt.Printf("request %s is now %s\n", req.ID, req.Status)
	return nil
}

func runConfirm(client *relayClient, status models.RequestStatus, args []string) error {
	name := "start"
	if status == models.StatusCompleted {
		name = "finish"
	}
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	id := fs.String("id", "", "request id")
	code := fs.String("code", "", "validation code read from the requester")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" || *code == "" {
		return fmt.Errorf("-id and -code are required")
	}

	req, err := client.UpdateRide(context.Background(), *id, status, *code)
	if err != nil {
		return err
	}
	fmt.Printf("ride %s is now %s\n", req.ID, req.Status)
	return nil
}
