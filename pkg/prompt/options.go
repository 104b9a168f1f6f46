package prompt

import "time"

// Option configures a Filler.
type Option func(*Filler)

// WithDriver overrides the prompt driver used for the session.
func WithDriver(driver PromptDriver) Option {
	return func(f *Filler) {
		if driver != nil {
			f.driver = driver
		}
	}
}

// WithRespondent records who is answering; stored on the response verbatim.
func WithRespondent(respondent string) Option {
	return func(f *Filler) {
		f.respondent = respondent
	}
}

// WithClock overrides the submission timestamp source.
func WithClock(now func() time.Time) Option {
	return func(f *Filler) {
		if now != nil {
			f.now = now
		}
	}
}

// WithIDGenerator overrides how response ids are minted.
func WithIDGenerator(gen func() string) Option {
	return func(f *Filler) {
		if gen != nil {
			f.newID = gen
		}
	}
}
