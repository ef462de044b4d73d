package domain

import (
	"sort"
	"time"
)

type AlertType string

const (
	AlertTypePerformanceDrop AlertType = "performance_drop"
	AlertTypeBudgetWarning   AlertType = "budget_warning"
	AlertTypeOpportunity     AlertType = "opportunity"
	AlertTypeOptimization    AlertType = "optimization"
)

type AlertPriority string

const (
	AlertPriorityHigh   AlertPriority = "high"
	AlertPriorityMedium AlertPriority = "medium"
	AlertPriorityLow    AlertPriority = "low"
)

// Rank retorna o peso de exibição da prioridade (maior aparece primeiro)
func (p AlertPriority) Rank() int {
	switch p {
	case AlertPriorityHigh:
		return 3
	case AlertPriorityMedium:
		return 2
	case AlertPriorityLow:
		return 1
	default:
		return 0
	}
}

type AlertStatus string

const (
	AlertStatusRead   AlertStatus = "read"
	AlertStatusUnread AlertStatus = "unread"
)

type Alert struct {
	ID             string        `json:"id" yaml:"id"`
	Type           AlertType     `json:"type" yaml:"type"`
	Priority       AlertPriority `json:"priority" yaml:"priority"`
	Title          string        `json:"title" yaml:"title"`
	Message        string        `json:"message" yaml:"message"`
	Recommendation string        `json:"recommendation" yaml:"recommendation"`
	Campaign       string        `json:"campaign" yaml:"campaign"`
	Timestamp      time.Time     `json:"timestamp" yaml:"timestamp"`
	Status         AlertStatus   `json:"status" yaml:"status"`
}

// SortAlerts ordena por prioridade (high > medium > low) e, no empate, do mais recente para o mais antigo
func SortAlerts(alerts []*Alert) {
	sort.SliceStable(alerts, func(i, j int) bool {
		ri, rj := alerts[i].Priority.Rank(), alerts[j].Priority.Rank()
		if ri != rj {
			return ri > rj
		}
		return alerts[i].Timestamp.After(alerts[j].Timestamp)
	})
}
