package cache

import (
	"fmt"
	"strings"
)

// Key addresses one cached query result. Keys are an ordered tuple of
// entity kind, operation and filter parameters, so that whole families of
// keys can be invalidated by prefix without enumerating them.
type Key struct {
	Kind   string
	Op     string
	Filter string
}

func (k Key) String() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{k.Kind, k.Op, k.Filter} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "/")
}

// Entity kinds.
const (
	kindApplicants    = "applicants"
	kindReSchedules   = "reSchedules"
	kindLogs          = "reScheduleLogs"
	kindConfiguration = "configuration"
)

// Applicant keys.

func ApplicantListKey() Key {
	return Key{Kind: kindApplicants, Op: "list"}
}

func ApplicantDetailKey(id int64) Key {
	return Key{Kind: kindApplicants, Op: "detail", Filter: fmt.Sprintf("%d", id)}
}

// ReSchedule keys, mirroring the list / by-applicant / detail split the
// admin views depend on.

func ReScheduleListKey(limit, offset int) Key {
	return Key{Kind: kindReSchedules, Op: "list", Filter: fmt.Sprintf("limit=%d&offset=%d", limit, offset)}
}

func ReScheduleByApplicantKey(applicantID int64) Key {
	return Key{Kind: kindReSchedules, Op: "applicant", Filter: fmt.Sprintf("%d", applicantID)}
}

func ReScheduleDetailKey(id int64) Key {
	return Key{Kind: kindReSchedules, Op: "detail", Filter: fmt.Sprintf("%d", id)}
}

func ReScheduleLogsKey(reScheduleID int64) Key {
	return Key{Kind: kindLogs, Op: "list", Filter: fmt.Sprintf("%d", reScheduleID)}
}

func ConfigurationKey() Key {
	return Key{Kind: kindConfiguration, Op: "detail"}
}

// Invalidation prefixes. Each mutation declares which of these it drops on
// success.

func ApplicantsPrefix() Prefix {
	return Prefix(kindApplicants)
}

func ApplicantListsPrefix() Prefix {
	return Prefix(kindApplicants + "/list")
}

func ApplicantDetailPrefix(id int64) Prefix {
	return Prefix(fmt.Sprintf("%s/detail/%d", kindApplicants, id))
}

func ReSchedulesPrefix() Prefix {
	return Prefix(kindReSchedules)
}

func ReScheduleListsPrefix() Prefix {
	return Prefix(kindReSchedules + "/list")
}

func ReScheduleByApplicantPrefix(applicantID int64) Prefix {
	return Prefix(fmt.Sprintf("%s/applicant/%d", kindReSchedules, applicantID))
}

func ReScheduleDetailPrefix(id int64) Prefix {
	return Prefix(fmt.Sprintf("%s/detail/%d", kindReSchedules, id))
}

func ConfigurationPrefix() Prefix {
	return Prefix(kindConfiguration)
}
