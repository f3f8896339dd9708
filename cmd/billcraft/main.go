package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/billcraft/billcraft/internal/api/dto"
	"github.com/billcraft/billcraft/internal/cache"
	"github.com/billcraft/billcraft/internal/config"
	"github.com/billcraft/billcraft/internal/domain/plan"
	ierr "github.com/billcraft/billcraft/internal/errors"
	"github.com/billcraft/billcraft/internal/logger"
	"github.com/billcraft/billcraft/internal/service"
	"github.com/billcraft/billcraft/internal/types"
	"github.com/billcraft/billcraft/internal/validator"
)

func init() {
	// all billing math happens in UTC
	time.Local = time.UTC
}

// BillingDocument is the CLI input: the plan catalog the computation may
// need plus the billing request itself, all resolved ahead of time.
type BillingDocument struct {
	Plans   []*plan.PlanDetails `json:"plans"`
	Request *dto.BillingRequest `json:"request"`
}

// staticPlanRepo serves plan lookups from the document's plan catalog.
type staticPlanRepo struct {
	plans map[string]*plan.PlanDetails
}

func newStaticPlanRepo(plans []*plan.PlanDetails) *staticPlanRepo {
	repo := &staticPlanRepo{plans: make(map[string]*plan.PlanDetails, len(plans))}
	for _, p := range plans {
		repo.plans[p.BillingPlan+"|"+p.TermLength] = p
	}
	return repo
}

func (r *staticPlanRepo) GetPlan(ctx context.Context, billingPlan string, term types.ContractTerm) (*plan.PlanDetails, error) {
	details, ok := r.plans[billingPlan+"|"+term.String()]
	if !ok {
		return nil, ierr.NewError("plan not found").
			WithHintf("No plan named %q with term %q in the input document", billingPlan, term).
			Mark(ierr.ErrNotFound)
	}
	return details, nil
}

func main() {
	inputPath := flag.String("input", "", "path to a billing document (JSON), - for stdin")
	format := flag.String("format", "json", "output format: json or csv")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(cfg.Logging.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	validator.NewValidator()

	doc, err := readDocument(*inputPath)
	if err != nil {
		log.Fatalf("failed to read billing document: %v", err)
	}

	params := service.ServiceParams{
		Logger:       log,
		Config:       cfg,
		PlanRepo:     newStaticPlanRepo(doc.Plans),
		FeatureCache: cache.NewInMemoryCache(),
	}

	billingService := service.NewBillingService(params)
	result, err := billingService.Calculate(context.Background(), doc.Request)
	if err != nil {
		if ierr.IsPlanNotFound(err) {
			log.Fatalf("billing unavailable: %v", err)
		}
		log.Fatalf("billing computation failed: %v", err)
	}

	switch *format {
	case "csv":
		invoiceService := service.NewInvoiceService(params)
		csvContent, invoiceNumber, err := invoiceService.GenerateCSV(result)
		if err != nil {
			log.Fatalf("failed to generate invoice: %v", err)
		}
		log.Infow("generated invoice", "invoice_number", invoiceNumber)
		fmt.Print(csvContent)
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			log.Fatalf("failed to encode result: %v", err)
		}
	default:
		log.Fatalf("unknown output format %q", *format)
	}
}

func readDocument(path string) (*BillingDocument, error) {
	if path == "" {
		return nil, fmt.Errorf("an input document is required (-input)")
	}

	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}

	var doc BillingDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Request == nil {
		return nil, fmt.Errorf("document has no billing request")
	}
	return &doc, nil
}
