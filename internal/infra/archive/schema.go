package archive

// Schema DDL for the archive database. Groups and tasks keep a position
// column so the snapshot's insertion order survives archival.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS batches (
    batch_id    TEXT PRIMARY KEY,
    archived_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS groups (
    batch_id     TEXT NOT NULL,
    group_id     INTEGER NOT NULL,
    name         TEXT NOT NULL,
    next_task_id INTEGER NOT NULL,
    current_task INTEGER,
    position     INTEGER NOT NULL,
    PRIMARY KEY (batch_id, group_id),
    FOREIGN KEY (batch_id) REFERENCES batches(batch_id)
);

CREATE TABLE IF NOT EXISTS tasks (
    batch_id    TEXT NOT NULL,
    group_id    INTEGER NOT NULL,
    task_id     INTEGER NOT NULL,
    name        TEXT NOT NULL,
    started_at  INTEGER,
    tracked     INTEGER,
    is_complete INTEGER NOT NULL,
    position    INTEGER NOT NULL,
    PRIMARY KEY (batch_id, group_id, task_id),
    FOREIGN KEY (batch_id, group_id) REFERENCES groups(batch_id, group_id)
);
`
