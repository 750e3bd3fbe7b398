package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/amishk599/careerconnect/internal/catalog"
	"github.com/amishk599/careerconnect/internal/model"
)

var (
	_ model.JobStore         = (*SQLiteStore)(nil)
	_ model.ProjectStore     = (*SQLiteStore)(nil)
	_ model.ApplicationStore = (*SQLiteStore)(nil)
)

// SQLiteStore persists the board in a SQLite database. Every table carries an
// autoincrement seq column; lists read seq descending so the most recent
// insert comes first.
type SQLiteStore struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS jobs (
	seq              INTEGER PRIMARY KEY AUTOINCREMENT,
	id               TEXT UNIQUE NOT NULL,
	title            TEXT NOT NULL,
	company          TEXT NOT NULL,
	location         TEXT,
	type             TEXT NOT NULL,
	salary_range     TEXT,
	description      TEXT,
	requirements     TEXT,
	posted_at        TEXT,
	logo_url         TEXT,
	applicants_count INTEGER DEFAULT 0,
	created_at       INTEGER
);

CREATE TABLE IF NOT EXISTS projects (
	seq          INTEGER PRIMARY KEY AUTOINCREMENT,
	id           TEXT UNIQUE NOT NULL,
	title        TEXT NOT NULL,
	description  TEXT,
	technologies TEXT,
	image_url    TEXT,
	link         TEXT,
	views        INTEGER DEFAULT 0,
	likes        INTEGER DEFAULT 0,
	comments     INTEGER DEFAULT 0
);

CREATE TABLE IF NOT EXISTS applications (
	seq             INTEGER PRIMARY KEY AUTOINCREMENT,
	id              TEXT UNIQUE NOT NULL,
	job_id          TEXT,
	job_title       TEXT,
	company_name    TEXT,
	status          TEXT NOT NULL,
	applied_date    TEXT,
	cover_letter    TEXT,
	applicant_email TEXT
);
`

// NewSQLiteStore opens (or creates) a SQLite database at dbPath and ensures the
// tables exist. When seed is true, each empty table is filled from the catalog.
func NewSQLiteStore(dbPath string, seed bool) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging sqlite db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating tables: %w", err)
	}

	s := &SQLiteStore{db: db}
	if seed {
		if err := s.seed(context.Background()); err != nil {
			db.Close()
			return nil, err
		}
	}
	return s, nil
}

// seed fills empty tables. Catalog slices are newest first, so they are
// inserted back to front to keep that order under seq DESC.
func (s *SQLiteStore) seed(ctx context.Context) error {
	if empty, err := s.tableEmpty(ctx, "jobs"); err != nil {
		return err
	} else if empty {
		jobs := catalog.Jobs()
		for i := len(jobs) - 1; i >= 0; i-- {
			if err := s.AddJob(ctx, jobs[i]); err != nil {
				return fmt.Errorf("seeding jobs: %w", err)
			}
		}
	}

	if empty, err := s.tableEmpty(ctx, "projects"); err != nil {
		return err
	} else if empty {
		projects := catalog.Projects()
		for i := len(projects) - 1; i >= 0; i-- {
			if err := s.AddProject(ctx, projects[i]); err != nil {
				return fmt.Errorf("seeding projects: %w", err)
			}
		}
	}

	if empty, err := s.tableEmpty(ctx, "applications"); err != nil {
		return err
	} else if empty {
		apps := catalog.Applications()
		for i := len(apps) - 1; i >= 0; i-- {
			if err := s.AddApplication(ctx, apps[i]); err != nil {
				return fmt.Errorf("seeding applications: %w", err)
			}
		}
	}
	return nil
}

// tableEmpty is only ever called with the fixed table names above.
func (s *SQLiteStore) tableEmpty(ctx context.Context, table string) (bool, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
		return false, fmt.Errorf("counting %s: %w", table, err)
	}
	return count == 0, nil
}

const jobColumns = `id, title, company, location, type, salary_range, description, requirements, posted_at, logo_url, applicants_count, created_at`

func (s *SQLiteStore) ListJobs(ctx context.Context) ([]model.Job, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+jobColumns+" FROM jobs ORDER BY seq DESC")
	if err != nil {
		return nil, fmt.Errorf("listing jobs: %w", err)
	}
	defer rows.Close()

	jobs := []model.Job{}
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing jobs: %w", err)
	}
	return jobs, nil
}

func (s *SQLiteStore) GetJob(ctx context.Context, id string) (model.Job, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+jobColumns+" FROM jobs WHERE id = ?", id)
	j, err := scanJob(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Job{}, model.ErrNotFound
	}
	if err != nil {
		return model.Job{}, fmt.Errorf("getting job %s: %w", id, err)
	}
	return j, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanJob(sc scanner) (model.Job, error) {
	var (
		j            model.Job
		jobType      string
		requirements sql.NullString
		location     sql.NullString
		salary       sql.NullString
		description  sql.NullString
		postedAt     sql.NullString
		logoURL      sql.NullString
		createdAt    sql.NullInt64
	)
	err := sc.Scan(&j.ID, &j.Title, &j.Company, &location, &jobType, &salary, &description,
		&requirements, &postedAt, &logoURL, &j.ApplicantsCount, &createdAt)
	if err != nil {
		return model.Job{}, err
	}
	j.Type = model.JobType(jobType)
	j.Location = location.String
	j.SalaryRange = salary.String
	j.Description = description.String
	j.PostedAt = postedAt.String
	j.LogoURL = logoURL.String
	if createdAt.Valid && createdAt.Int64 > 0 {
		j.CreatedAt = time.Unix(createdAt.Int64, 0)
	}
	if j.Requirements, err = decodeList(requirements); err != nil {
		return model.Job{}, fmt.Errorf("decoding requirements for job %s: %w", j.ID, err)
	}
	return j, nil
}

// AddJob inserts job; it becomes the first row of ListJobs.
func (s *SQLiteStore) AddJob(ctx context.Context, job model.Job) error {
	reqs, err := encodeList(job.Requirements)
	if err != nil {
		return fmt.Errorf("encoding requirements: %w", err)
	}
	var createdAt int64
	if !job.CreatedAt.IsZero() {
		createdAt = job.CreatedAt.Unix()
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO jobs (`+jobColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		job.ID, job.Title, job.Company, job.Location, string(job.Type), job.SalaryRange,
		job.Description, reqs, job.PostedAt, job.LogoURL, job.ApplicantsCount, createdAt,
	)
	if err != nil {
		return fmt.Errorf("inserting job %s: %w", job.ID, err)
	}
	return nil
}

func (s *SQLiteStore) CountJobs(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM jobs").Scan(&count); err != nil {
		return 0, fmt.Errorf("counting jobs: %w", err)
	}
	return count, nil
}

func (s *SQLiteStore) ListProjects(ctx context.Context) ([]model.Project, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, title, description, technologies, image_url, link, views, likes, comments
		FROM projects ORDER BY seq DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	projects := []model.Project{}
	for rows.Next() {
		var (
			p                      model.Project
			desc, techs, img, link sql.NullString
		)
		if err := rows.Scan(&p.ID, &p.Title, &desc, &techs, &img, &link,
			&p.Stats.Views, &p.Stats.Likes, &p.Stats.Comments); err != nil {
			return nil, fmt.Errorf("scanning project: %w", err)
		}
		p.Description = desc.String
		p.ImageURL = img.String
		p.Link = link.String
		if p.Technologies, err = decodeList(techs); err != nil {
			return nil, fmt.Errorf("decoding technologies for project %s: %w", p.ID, err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	return projects, nil
}

// AddProject inserts p; it becomes the first row of ListProjects.
func (s *SQLiteStore) AddProject(ctx context.Context, p model.Project) error {
	techs, err := encodeList(p.Technologies)
	if err != nil {
		return fmt.Errorf("encoding technologies: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO projects (id, title, description, technologies, image_url, link, views, likes, comments)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Title, p.Description, techs, p.ImageURL, p.Link, p.Stats.Views, p.Stats.Likes, p.Stats.Comments,
	)
	if err != nil {
		return fmt.Errorf("inserting project %s: %w", p.ID, err)
	}
	return nil
}

func (s *SQLiteStore) ListApplications(ctx context.Context) ([]model.Application, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, job_id, job_title, company_name, status, applied_date, cover_letter, applicant_email
		FROM applications ORDER BY seq DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing applications: %w", err)
	}
	defer rows.Close()

	apps := []model.Application{}
	for rows.Next() {
		var (
			a                                         model.Application
			status                                    string
			jobID, title, company, date, cover, email sql.NullString
		)
		if err := rows.Scan(&a.ID, &jobID, &title, &company, &status, &date, &cover, &email); err != nil {
			return nil, fmt.Errorf("scanning application: %w", err)
		}
		a.JobID = jobID.String
		a.JobTitle = title.String
		a.CompanyName = company.String
		a.Status = model.ApplicationStatus(status)
		a.AppliedDate = date.String
		a.CoverLetter = cover.String
		a.ApplicantEmail = email.String
		apps = append(apps, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing applications: %w", err)
	}
	return apps, nil
}

// AddApplication inserts a; it becomes the first row of ListApplications.
func (s *SQLiteStore) AddApplication(ctx context.Context, a model.Application) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO applications (id, job_id, job_title, company_name, status, applied_date, cover_letter, applicant_email)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.JobID, a.JobTitle, a.CompanyName, string(a.Status), a.AppliedDate, a.CoverLetter, a.ApplicantEmail,
	)
	if err != nil {
		return fmt.Errorf("inserting application %s: %w", a.ID, err)
	}
	return nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func encodeList(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeList(raw sql.NullString) ([]string, error) {
	if !raw.Valid || raw.String == "" {
		return []string{}, nil
	}
	var items []string
	if err := json.Unmarshal([]byte(raw.String), &items); err != nil {
		return nil, err
	}
	return items, nil
}
