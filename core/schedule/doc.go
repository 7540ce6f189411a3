// Package schedule turns a roster configuration into a constraint
// model and drives the search engine over it. It builds one boolean
// decision variable per assignable (nurse, day, shift) triple, encodes
// the business rules as declarative constraints and reports every
// discovered assignment as a per-day per-nurse schedule.
package schedule
