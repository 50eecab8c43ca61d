package sources

import (
	"context"

	"github.com/enriquevdb/compliance-engine/internal/types/business"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// PostgresRuleSource backs every provider interface with Postgres. Rate
// and exemption reads happen once at startup; only the jurisdiction
// support queries run per request (on an address cache miss), which is
// why they are the lone code path the address gate bounds with a
// timeout.
type PostgresRuleSource struct {
	pool *pgxpool.Pool
}

// NewPostgresRuleSource creates a rule source over an existing pool.
func NewPostgresRuleSource(pool *pgxpool.Pool) *PostgresRuleSource {
	return &PostgresRuleSource{pool: pool}
}

// ConnectPostgresRuleSource dials the database and returns a rule source.
func ConnectPostgresRuleSource(ctx context.Context, databaseURL string) (*PostgresRuleSource, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create connection pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "failed to ping database")
	}
	return &PostgresRuleSource{pool: pool}, nil
}

// Close releases the underlying pool.
func (s *PostgresRuleSource) Close() {
	s.pool.Close()
}

func (s *PostgresRuleSource) rateMap(ctx context.Context, query string) (map[string]decimal.Decimal, error) {
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "rate query failed")
	}
	defer rows.Close()

	rates := make(map[string]decimal.Decimal)
	for rows.Next() {
		var key, rate string
		if err := rows.Scan(&key, &rate); err != nil {
			return nil, errors.Wrap(err, "failed to scan rate row")
		}
		value, err := decimal.NewFromString(rate)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid rate for %q", key)
		}
		rates[key] = value
	}
	return rates, rows.Err()
}

func (s *PostgresRuleSource) StateRates(ctx context.Context) (map[string]decimal.Decimal, error) {
	return s.rateMap(ctx, `SELECT state, rate::text FROM state_rates`)
}

func (s *PostgresRuleSource) CountyRates(ctx context.Context) (map[string]decimal.Decimal, error) {
	return s.rateMap(ctx, `SELECT jurisdiction_key, rate::text FROM county_rates`)
}

func (s *PostgresRuleSource) CityRates(ctx context.Context) (map[string]decimal.Decimal, error) {
	return s.rateMap(ctx, `SELECT jurisdiction_key, rate::text FROM city_rates`)
}

func (s *PostgresRuleSource) CategoryModifiers(ctx context.Context) (map[string]decimal.Decimal, error) {
	return s.rateMap(ctx, `SELECT category, rate::text FROM category_modifiers`)
}

func (s *PostgresRuleSource) IsStateSupported(ctx context.Context, state string) (bool, error) {
	var supported bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM supported_states WHERE state = $1)`, state,
	).Scan(&supported)
	if err != nil {
		return false, errors.Wrapf(err, "state support lookup failed for %q", state)
	}
	return supported, nil
}

func (s *PostgresRuleSource) IsCitySupported(ctx context.Context, state, city string) (bool, error) {
	var supported bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM supported_cities WHERE state = $1 AND city = $2)`, state, city,
	).Scan(&supported)
	if err != nil {
		return false, errors.Wrapf(err, "city support lookup failed for %q", business.JurisdictionKey(state, city))
	}
	return supported, nil
}

func (s *PostgresRuleSource) Volume(ctx context.Context, merchantID, state string) (decimal.Decimal, error) {
	var volume string
	err := s.pool.QueryRow(ctx,
		`SELECT volume::text FROM merchant_volumes WHERE merchant_id = $1 AND state = $2`,
		merchantID, state,
	).Scan(&volume)
	if errors.Is(err, pgx.ErrNoRows) {
		// Unknown merchant/state pairs default to zero volume.
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, errors.Wrapf(err, "volume lookup failed for merchant %q", merchantID)
	}
	value, err := decimal.NewFromString(volume)
	if err != nil {
		return decimal.Zero, errors.Wrapf(err, "invalid volume for merchant %q", merchantID)
	}
	return value, nil
}

func (s *PostgresRuleSource) Threshold(ctx context.Context, merchantID, state string) (decimal.Decimal, bool, error) {
	var threshold string
	err := s.pool.QueryRow(ctx,
		`SELECT threshold::text FROM merchant_thresholds WHERE merchant_id = $1 AND state = $2`,
		merchantID, state,
	).Scan(&threshold)
	if errors.Is(err, pgx.ErrNoRows) {
		return decimal.Zero, false, nil
	}
	if err != nil {
		return decimal.Zero, false, errors.Wrapf(err, "threshold lookup failed for merchant %q", merchantID)
	}
	value, err := decimal.NewFromString(threshold)
	if err != nil {
		return decimal.Zero, false, errors.Wrapf(err, "invalid threshold for merchant %q", merchantID)
	}
	return value, true, nil
}

func (s *PostgresRuleSource) ExemptCustomerTypes(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, `SELECT customer_type FROM exempt_customer_types`)
	if err != nil {
		return nil, errors.Wrap(err, "exempt customer type query failed")
	}
	defer rows.Close()

	var types []string
	for rows.Next() {
		var ct string
		if err := rows.Scan(&ct); err != nil {
			return nil, errors.Wrap(err, "failed to scan customer type row")
		}
		types = append(types, ct)
	}
	return types, rows.Err()
}

func (s *PostgresRuleSource) ItemExemptionRules(ctx context.Context) ([]business.ExemptionRule, error) {
	rows, err := s.pool.Query(ctx, `SELECT category, state FROM item_exemption_rules`)
	if err != nil {
		return nil, errors.Wrap(err, "item exemption rule query failed")
	}
	defer rows.Close()

	var rules []business.ExemptionRule
	for rows.Next() {
		var rule business.ExemptionRule
		if err := rows.Scan(&rule.Category, &rule.State); err != nil {
			return nil, errors.Wrap(err, "failed to scan exemption rule row")
		}
		rules = append(rules, rule)
	}
	return rules, rows.Err()
}
