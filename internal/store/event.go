package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) AppendEvaluationRequest(ctx context.Context, data EvaluationRequestEventData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO evaluation_requests
			(timestamp, request_id, endpoint, background, latency_ms, status_code,
			 success, cancelled, error_message, request_body, response_body)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC(), data.RequestID, data.Endpoint, data.Background, data.LatencyMs, data.StatusCode,
		data.Success, data.Cancelled, data.ErrorMessage, data.RequestBody, data.ResponseBody,
	)
	if err != nil {
		return fmt.Errorf("append evaluation request: %w", err)
	}
	return nil
}

const selectEvaluationRequest = `SELECT id, timestamp, request_id, endpoint, background, latency_ms,
	status_code, success, cancelled, error_message, request_body, response_body
	FROM evaluation_requests`

func (r *eventRepo) QueryEvaluationRequests(ctx context.Context, opts QueryOpts) ([]EvaluationRequestRecord, error) {
	var (
		where []string
		args  []any
	)
	if !opts.From.IsZero() {
		where = append(where, "timestamp >= ?")
		args = append(args, opts.From.UTC())
	}
	if !opts.To.IsZero() {
		where = append(where, "timestamp <= ?")
		args = append(args, opts.To.UTC())
	}

	q := selectEvaluationRequest
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY id DESC"
	if opts.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query evaluation requests: %w", err)
	}
	defer rows.Close()

	var out []EvaluationRequestRecord
	for rows.Next() {
		rec, err := scanEvaluationRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate evaluation requests: %w", err)
	}
	return out, nil
}

func (r *eventRepo) GetEvaluationRequest(ctx context.Context, id int) (*EvaluationRequestRecord, error) {
	row := r.db.QueryRowContext(ctx, selectEvaluationRequest+" WHERE id = ?", id)
	rec, err := scanEvaluationRequest(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return rec, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEvaluationRequest(s scanner) (*EvaluationRequestRecord, error) {
	var rec EvaluationRequestRecord
	err := s.Scan(
		&rec.ID, &rec.Timestamp, &rec.RequestID, &rec.Endpoint, &rec.Background, &rec.LatencyMs,
		&rec.StatusCode, &rec.Success, &rec.Cancelled, &rec.ErrorMessage, &rec.RequestBody, &rec.ResponseBody,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scan evaluation request: %w", err)
	}
	return &rec, nil
}
