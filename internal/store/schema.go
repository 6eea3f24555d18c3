package store

// schema mirrors the legacy CampusSync tables. IDs are server-generated
// monotonic integers; passwords hold bcrypt hashes, never plaintext.
// The core is append-only: nothing here is updated or deleted except the
// marks upsert performed by the ingest worker.
const schema = `
CREATE TABLE IF NOT EXISTS admin (
	admin_id  BIGSERIAL PRIMARY KEY,
	username  TEXT NOT NULL UNIQUE,
	password  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS student (
	student_id BIGSERIAL PRIMARY KEY,
	name       TEXT NOT NULL,
	email      TEXT NOT NULL UNIQUE,
	password   TEXT NOT NULL,
	course     TEXT NOT NULL,
	semester   INT  NOT NULL
);

CREATE TABLE IF NOT EXISTS faculty (
	faculty_id BIGSERIAL PRIMARY KEY,
	name       TEXT NOT NULL,
	email      TEXT NOT NULL UNIQUE,
	password   TEXT NOT NULL,
	department TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS course (
	course_id   BIGSERIAL PRIMARY KEY,
	course_name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS subject (
	subject_id   BIGSERIAL PRIMARY KEY,
	subject_name TEXT NOT NULL,
	course_id    BIGINT REFERENCES course(course_id) ON DELETE SET NULL,
	faculty_id   BIGINT REFERENCES faculty(faculty_id) ON DELETE SET NULL
);

CREATE TABLE IF NOT EXISTS notice (
	notice_id BIGSERIAL PRIMARY KEY,
	title     TEXT NOT NULL,
	message   TEXT NOT NULL,
	posted_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS attendance (
	student_id BIGINT NOT NULL REFERENCES student(student_id),
	subject_id BIGINT NOT NULL REFERENCES subject(subject_id),
	att_date   DATE   NOT NULL,
	status     TEXT   NOT NULL,
	PRIMARY KEY (student_id, subject_id, att_date)
);

CREATE TABLE IF NOT EXISTS marks (
	student_id BIGINT NOT NULL REFERENCES student(student_id),
	subject_id BIGINT NOT NULL REFERENCES subject(subject_id),
	marks      INT    NOT NULL,
	PRIMARY KEY (student_id, subject_id)
);

CREATE INDEX IF NOT EXISTS idx_attendance_student ON attendance(student_id);
CREATE INDEX IF NOT EXISTS idx_marks_student      ON marks(student_id);
`
