package services

import (
	"strings"

	"github.com/Erics13/optimizador-de-rutas/internal/config"
	"github.com/Erics13/optimizador-de-rutas/internal/domain"
)

// A cabinet job: one account's mass-failure situation, to become one or more
// route sheets. Events is the subset of the account's events consumed by the
// job (the full group for every tier except the branch-fault tier, which
// isolates only its cohesive unreachable cluster).
type CabinetJob struct {
	Priority      float64
	AccountNumber string
	Events        []*domain.Event
}

func isUnreachable(ev *domain.Event) bool {
	c := NormalizeKey(ev.Category)
	return c == "unreachable" || c == "inaccesible"
}

func isVoltageFault(ev *domain.Event) bool {
	m := NormalizeKey(ev.ErrorMsg)
	return strings.Contains(m, "voltaje") || strings.Contains(m, "voltage")
}

// ClassifyCabinetJobs groups events by electrical account number and
// classifies each account group into a priority tier. Tiers are evaluated in
// strict precedence; the first satisfied tier wins and lower tiers are not
// considered for that account:
//
//	1    unreachable count >= threshold          -> whole group
//	1.5  unreachable in [5,threshold), cohesive  -> unreachable subset only
//	2    voltage-fault count >= threshold        -> whole group
//	3    group size >= threshold                 -> whole group
//
// Accounts matching no tier produce no job and their events stay in the
// regular pool. Jobs come out in first-seen account order so the pipeline is
// deterministic for a given input.
func ClassifyCabinetJobs(events []*domain.Event) []*CabinetJob {
	groups := make(map[string][]*domain.Event)
	var accountOrder []string

	for _, ev := range events {
		account := strings.TrimSpace(ev.AccountNumber)
		if account == "" {
			continue
		}
		if _, seen := groups[account]; !seen {
			accountOrder = append(accountOrder, account)
		}
		groups[account] = append(groups[account], ev)
	}

	var jobs []*CabinetJob
	for _, account := range accountOrder {
		group := groups[account]

		var unreachable []*domain.Event
		for _, ev := range group {
			if isUnreachable(ev) {
				unreachable = append(unreachable, ev)
			}
		}

		if len(unreachable) >= config.CabinetFailureThreshold {
			jobs = append(jobs, &CabinetJob{
				Priority:      domain.PriorityCabinetFailure,
				AccountNumber: account,
				Events:        group,
			})
			continue
		}

		if len(unreachable) >= config.BranchFaultMinEvents &&
			IsCohesiveGroup(unreachable, config.BranchFaultCohesionMeters) {
			jobs = append(jobs, &CabinetJob{
				Priority:      domain.PriorityBranchFault,
				AccountNumber: account,
				Events:        unreachable,
			})
			continue
		}

		voltageCount := 0
		for _, ev := range group {
			if isVoltageFault(ev) {
				voltageCount++
			}
		}
		if voltageCount >= config.CabinetFailureThreshold {
			jobs = append(jobs, &CabinetJob{
				Priority:      domain.PriorityVoltage,
				AccountNumber: account,
				Events:        group,
			})
			continue
		}

		if len(group) >= config.CabinetFailureThreshold {
			jobs = append(jobs, &CabinetJob{
				Priority:      domain.PriorityAccumulation,
				AccountNumber: account,
				Events:        group,
			})
		}
	}

	return jobs
}
