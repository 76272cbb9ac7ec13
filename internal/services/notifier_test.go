package services

import "sync"

type notice struct {
	severity Severity
	message  string
}

// recordingNotifier captures notifications for assertions.
type recordingNotifier struct {
	mu      sync.Mutex
	notices []notice
}

func (r *recordingNotifier) Notify(severity Severity, message string) {
	r.mu.Lock()
	r.notices = append(r.notices, notice{severity: severity, message: message})
	r.mu.Unlock()
}

func (r *recordingNotifier) all() []notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]notice, len(r.notices))
	copy(out, r.notices)
	return out
}

func (r *recordingNotifier) last() (notice, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notices) == 0 {
		return notice{}, false
	}
	return r.notices[len(r.notices)-1], true
}
