// Package sapi provides an HTTP implementation of the domain.Sampler
// interface against a remote annealing service.
//
// The service exposes a small JSON problem API:
//   - POST /problems/ submits a problem document (solver name, problem type,
//     linear and quadratic terms, sampling parameters) and returns the
//     problem id and initial status.
//   - GET /problems/{id}/ reports status and, once COMPLETED, the answer:
//     the variable order plus parallel arrays of solutions, energies, and
//     occurrence counts, ordered ascending by energy.
//   - GET /solvers/remote/ lists the available solvers.
//
// All requests are JSON over HTTP, authenticated with the X-Auth-Token
// header, and accept a context for cancellation. Non-2xx statuses and
// FAILED or CANCELLED problems are returned as *domain.ServiceError. The
// client performs no retries; a submission either completes or fails once.
package sapi
