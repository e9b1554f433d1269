package integration

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/iwvelando/finlit/internal/config"
	"github.com/iwvelando/finlit/internal/scenario"
	"github.com/iwvelando/finlit/pkg/rules"
	"go.uber.org/zap"
)

func largeConfiguration(n int) config.Configuration {
	rate := 0.06
	conf := config.Configuration{}
	for i := 0; i < n; i++ {
		conf.Scenarios = append(conf.Scenarios, config.Scenario{
			Name:            fmt.Sprintf("scenario %d", i),
			Active:          true,
			Country:         []string{"pakistan", "italy", "global"}[i%3],
			MonthlyIncome:   1000 + float64(i),
			MonthlyExpenses: 800,
			Expenses:        []config.Expense{{Name: "Rent", Amount: 500}, {Name: "Cinema", Amount: 300}},
			SavingsGoals:    []config.SavingsGoal{{Name: "Goal", Target: 10000, MonthlySaving: 100}},
			// Pays barely more than the interest, so the simulation runs to the cap.
			Debts:       []config.Debt{{Name: "Slow loan", Balance: 10000, MonthlyPayment: 50.01, InterestRate: &rate}},
			Investments: []config.Investment{{Name: "Fund", Principal: 1000, MonthlyContribution: 50, Years: 40}},
		})
	}
	return conf
}

// TestPerformance checks that many worst-case scenarios complete quickly.
func TestPerformance(t *testing.T) {
	conf := largeConfiguration(300)

	start := time.Now()
	reports, err := scenario.GetReports(zap.NewNop(), conf)
	if err != nil {
		t.Fatalf("GetReports() error = %v", err)
	}
	elapsed := time.Since(start)
	t.Logf("computed %d reports in %v", len(reports), elapsed)

	if elapsed > 10*time.Second {
		t.Errorf("processing time %v exceeds 10 second threshold", elapsed)
	}
	if len(reports) != 300 {
		t.Fatalf("expected 300 reports, got %d", len(reports))
	}
	if debt := reports[0].Debts[0].Result; debt == nil || !debt.Capped || debt.MonthsToPayoff != 600 {
		t.Errorf("expected capped payoff, got %+v", debt)
	}
}

// TestConcurrentReports shares one runner across goroutines and checks the
// results match a sequential run.
func TestConcurrentReports(t *testing.T) {
	table, err := rules.NewTable(nil)
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}
	runner, err := scenario.NewRunner(zap.NewNop(), table, nil)
	if err != nil {
		t.Fatalf("NewRunner() error = %v", err)
	}

	conf := largeConfiguration(50)
	sequential := runner.Run(conf.Scenarios)

	concurrent := make([]scenario.Report, len(conf.Scenarios))
	var wg sync.WaitGroup
	for i := range conf.Scenarios {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			concurrent[i] = runner.Report(conf.Scenarios[i])
		}(i)
	}
	wg.Wait()

	for i := range sequential {
		if sequential[i].EmergencyFund != concurrent[i].EmergencyFund ||
			*sequential[i].Debts[0].Result != *concurrent[i].Debts[0].Result ||
			*sequential[i].Investments[0].Result != *concurrent[i].Investments[0].Result {
			t.Errorf("report %d differs between sequential and concurrent runs", i)
		}
	}
}

func BenchmarkGetReports(b *testing.B) {
	conf := largeConfiguration(10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := scenario.GetReports(zap.NewNop(), conf); err != nil {
			b.Fatal(err)
		}
	}
}
