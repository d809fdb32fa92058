// Package homefin provides the core types and operations of a local-first
// personal finance assistant. It is designed to keep the user's records in a
// human-readable, version-controllable file, and to stay fully auditable:
// every change goes through an explicit command.
//
// The core functionalities include:
//   - Record Keeping: bills, accounts, cards, mortgages, investments,
//     deadlines, family activities and bill payments, kept in a single Book.
//   - Command Execution: structured commands (pay a bill, create a deadline,
//     complete a deadline...) validated against the book before a single
//     atomic mutation is applied.
//   - Aggregation: due-soon reports, balance snapshots, net worth and
//     recurring-cost estimation over the live record set.
//   - Data Persistence: encoding and decoding the book to and from JSONL,
//     one record per line, with a stable field order.
//
// The interp subpackage turns free-form text into these commands and
// queries; the fin command-line tool wires everything together.
package homefin
