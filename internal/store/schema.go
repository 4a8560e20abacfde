package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS app_state (
    key       TEXT PRIMARY KEY,
    payload   BLOB NOT NULL,
    saved_at  TEXT NOT NULL
);
`
