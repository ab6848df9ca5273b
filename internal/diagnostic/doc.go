// Package diagnostic provides coded errors and warnings collected while
// checking printer profiles.
//
// Key capabilities:
//   - Error and warning severities with stable codes
//   - Profile and field attribution for every message
//   - A combined error for callers that only need pass/fail
package diagnostic
