package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"manajet-client/internal/client"
	"manajet-client/internal/config"
	"manajet-client/internal/metrics"
	"manajet-client/internal/model"
	"manajet-client/internal/schedule"
	"manajet-client/internal/search"
	"manajet-client/pkg/logger"
	"manajet-client/pkg/utils"
)

func main() {
	// .env is optional; real deployments set variables directly.
	_ = godotenv.Load()

	configPath := flag.String("config", "", "path to YAML config file")
	trace := flag.Bool("trace", false, "print the request trace after the command")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logg := logger.New(cfg.Logging.Level)
	m := metrics.NewMetrics()

	api, err := client.New(cfg, logg, m)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	if err := run(ctx, cfg, api, logg, args); err != nil {
		logg.Error("Command %q failed: %v", args[0], err)
		os.Exit(1)
	}

	if *trace {
		printTrace(api)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: jetctl [flags] <command> [args]

commands:
  dashboard              login and show stats (and pending approvals for crew)
  flights                list all flights
  jets                   list jets available for scheduling
  crew                   list crew members
  passengers             list passengers
  search <query>         one-shot airport search
  typeahead              debounced airport search over stdin lines
  estimate <dep> <dst>   estimate flight duration between two airports
  approve <flight-id>    approve a pending flight
  reject <flight-id>     reject a pending flight
  logout                 terminate the server session

flags:
  -config <path>         YAML config file
  -trace                 print the request trace after the command`)
}

func run(ctx context.Context, cfg *config.Config, api *client.Client, logg *logger.Logger, args []string) error {
	user, err := login(ctx, api)
	if err != nil {
		return err
	}

	switch args[0] {
	case "dashboard":
		return dashboard(ctx, api, user)
	case "flights":
		flights, err := api.Flights(ctx)
		if err != nil {
			return err
		}
		for _, f := range flights {
			fmt.Printf("%s  %s -> %s  %s  [%s / %s]\n",
				f.ID, f.Departure, f.Destination, f.DepartureTime, f.Status, f.ApprovalStatus)
		}
	case "jets":
		jets, err := api.AvailableJets(ctx)
		if err != nil {
			return err
		}
		for _, j := range jets {
			fmt.Printf("%s  %s (%s)  capacity %d\n", j.ID, j.Model, j.TailNumber, j.Capacity)
		}
	case "crew":
		crew, err := api.Crew(ctx)
		if err != nil {
			return err
		}
		for _, c := range crew {
			fmt.Printf("%s  %s  %s\n", c.ID, c.Name, c.CrewType)
		}
	case "passengers":
		passengers, err := api.Passengers(ctx)
		if err != nil {
			return err
		}
		for _, p := range passengers {
			fmt.Printf("%s  %s  %s\n", p.ID, p.Name, p.Nationality)
		}
	case "search":
		if len(args) < 2 {
			return fmt.Errorf("search requires a query")
		}
		airports, err := api.SearchAirports(ctx, args[1])
		if err != nil {
			return err
		}
		for _, a := range airports {
			fmt.Println(a.Display())
		}
	case "typeahead":
		return typeahead(ctx, cfg, api, logg)
	case "estimate":
		if len(args) < 3 {
			return fmt.Errorf("estimate requires departure and destination codes")
		}
		return estimate(ctx, api, args[1], args[2])
	case "approve":
		if len(args) < 2 {
			return fmt.Errorf("approve requires a flight ID")
		}
		return api.ApproveFlight(ctx, args[1])
	case "reject":
		if len(args) < 2 {
			return fmt.Errorf("reject requires a flight ID")
		}
		return api.RejectFlight(ctx, args[1])
	case "logout":
		api.Logout(ctx)
	default:
		usage()
		return fmt.Errorf("unknown command %q", args[0])
	}

	return nil
}

// login authenticates with credentials from the environment. Without
// credentials the session stays unauthenticated; most endpoints will then
// reject with a non-200 that surfaces as a request failure.
func login(ctx context.Context, api *client.Client) (*model.User, error) {
	username := os.Getenv("MANAJET_USERNAME")
	password := os.Getenv("MANAJET_PASSWORD")
	if username == "" {
		return nil, nil
	}
	return api.Login(ctx, username, password)
}

// dashboard fetches stats and, for crew users, pending approvals. The two
// fetches run concurrently and are combined only after both complete.
func dashboard(ctx context.Context, api *client.Client, user *model.User) error {
	var (
		wg           sync.WaitGroup
		stats        *model.DashboardStats
		statsErr     error
		approvals    []model.Flight
		approvalsErr error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		stats, statsErr = api.Stats(ctx)
	}()

	showApprovals := user != nil && user.Role == model.RoleCrew
	if showApprovals {
		wg.Add(1)
		go func() {
			defer wg.Done()
			approvals, approvalsErr = api.PendingApprovals(ctx)
		}()
	}

	wg.Wait()

	if statsErr != nil {
		return statsErr
	}

	fmt.Printf("Passengers: %d\nCrew: %d\nJets: %d (available %d)\nFlights: %d (active %d)\n",
		stats.TotalPassengers, stats.TotalCrew, stats.TotalJets,
		stats.AvailableJets, stats.TotalFlights, stats.ActiveFlights)

	if showApprovals {
		if approvalsErr != nil {
			return approvalsErr
		}
		fmt.Printf("Pending approvals: %d\n", len(approvals))
		for _, f := range approvals {
			fmt.Printf("  %s  %s -> %s  requested by %s\n", f.ID, f.Departure, f.Destination, f.RequestedBy)
		}
	}

	return nil
}

// typeahead reads query lines from stdin and runs them through the
// debounced search, printing each surviving result set.
func typeahead(ctx context.Context, cfg *config.Config, api *client.Client, logg *logger.Logger) error {
	deb := search.NewDebouncer("airport", cfg.Search.DebounceWindow, api.SearchAirports, logg, nil)
	deb.Start()
	defer deb.Stop()

	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			deb.Update(scanner.Text())
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case result := <-deb.Results():
			if result.Err != nil {
				logg.Error("Search for %q failed: %v", result.Query, result.Err)
				continue
			}
			fmt.Printf("%q: %d airports\n", result.Query, len(result.Airports))
			for _, a := range result.Airports {
				fmt.Println("  " + a.Display())
			}
		}
	}
}

// estimate prints the backend's duration estimate along with the arrival
// it implies for a departure right now.
func estimate(ctx context.Context, api *client.Client, departure, destination string) error {
	est, err := api.EstimateDuration(ctx, departure, destination)
	if err != nil {
		return err
	}

	fmt.Printf("%s -> %s: %s (%d minutes)\n", est.Departure, est.Destination, est.Text, est.TotalMinutes)

	plan := &schedule.Plan{}
	plan.SetDepartureTime(time.Now())
	plan.SetEstimate(est)
	fmt.Printf("Departing now arrives at %s\n", utils.FormatFlightTime(plan.ArrivalTime))

	return nil
}

func printTrace(api *client.Client) {
	for _, e := range api.History().Snapshot() {
		status := fmt.Sprintf("%d", e.Status)
		if e.Err != "" {
			status = e.Err
		}
		fmt.Fprintf(os.Stderr, "%s %s %s -> %s (%dms)\n",
			e.At.Format("15:04:05.000"), e.Method, e.Path, status, e.Latency.Milliseconds())
	}
}
