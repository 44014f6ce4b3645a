package schema

import "helpdesk/internal/infrastructure/database"

// Statement is one idempotent DDL statement.
type Statement struct {
	Name string
	SQL  string
}

func statementsFor(b database.Backend) []Statement {
	switch b {
	case database.BackendPostgres:
		return postgresDDL
	case database.BackendSQLServer:
		return sqlServerDDL
	case database.BackendMySQL:
		return mysqlDDL
	default:
		return sqliteDDL
	}
}

var sqliteDDL = []Statement{
	{"users", `CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT UNIQUE NOT NULL,
		email TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'staff',
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		active INTEGER DEFAULT 1,
		failed_login_attempts INTEGER DEFAULT 0,
		locked_until DATETIME NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`},
	{"tickets", `CREATE TABLE IF NOT EXISTS tickets (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		submitter_name TEXT NOT NULL,
		submitter_email TEXT NOT NULL,
		priority TEXT NOT NULL DEFAULT 'medium',
		category TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'open',
		assigned_to INTEGER NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (assigned_to) REFERENCES users (id)
	)`},
	{"ticket_comments", `CREATE TABLE IF NOT EXISTS ticket_comments (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		ticket_id INTEGER NOT NULL,
		user_id INTEGER NOT NULL,
		comment TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (ticket_id) REFERENCES tickets (id) ON DELETE CASCADE,
		FOREIGN KEY (user_id) REFERENCES users (id)
	)`},
	{"idx_tickets_status", `CREATE INDEX IF NOT EXISTS idx_tickets_status ON tickets (status)`},
	{"idx_tickets_assigned_to", `CREATE INDEX IF NOT EXISTS idx_tickets_assigned_to ON tickets (assigned_to)`},
	{"idx_ticket_comments_ticket_id", `CREATE INDEX IF NOT EXISTS idx_ticket_comments_ticket_id ON ticket_comments (ticket_id)`},
}

var postgresDDL = []Statement{
	{"users", `CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username VARCHAR(255) UNIQUE NOT NULL,
		email VARCHAR(255) UNIQUE NOT NULL,
		password VARCHAR(255) NOT NULL,
		role VARCHAR(50) NOT NULL DEFAULT 'staff',
		first_name VARCHAR(255) NOT NULL,
		last_name VARCHAR(255) NOT NULL,
		active INTEGER DEFAULT 1,
		failed_login_attempts INTEGER DEFAULT 0,
		locked_until TIMESTAMP NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`},
	{"tickets", `CREATE TABLE IF NOT EXISTS tickets (
		id SERIAL PRIMARY KEY,
		title VARCHAR(500) NOT NULL,
		description TEXT NOT NULL,
		submitter_name VARCHAR(255) NOT NULL,
		submitter_email VARCHAR(255) NOT NULL,
		priority VARCHAR(50) NOT NULL DEFAULT 'medium',
		category VARCHAR(100) NOT NULL,
		status VARCHAR(50) NOT NULL DEFAULT 'open',
		assigned_to INTEGER NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (assigned_to) REFERENCES users (id)
	)`},
	{"ticket_comments", `CREATE TABLE IF NOT EXISTS ticket_comments (
		id SERIAL PRIMARY KEY,
		ticket_id INTEGER NOT NULL,
		user_id INTEGER NOT NULL,
		comment TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (ticket_id) REFERENCES tickets (id) ON DELETE CASCADE,
		FOREIGN KEY (user_id) REFERENCES users (id)
	)`},
	{"idx_tickets_status", `CREATE INDEX IF NOT EXISTS idx_tickets_status ON tickets (status)`},
	{"idx_tickets_assigned_to", `CREATE INDEX IF NOT EXISTS idx_tickets_assigned_to ON tickets (assigned_to)`},
	{"idx_ticket_comments_ticket_id", `CREATE INDEX IF NOT EXISTS idx_ticket_comments_ticket_id ON ticket_comments (ticket_id)`},
}

var sqlServerDDL = []Statement{
	{"users", `IF NOT EXISTS (SELECT * FROM sysobjects WHERE name='users' AND xtype='U')
	CREATE TABLE users (
		id INT IDENTITY(1,1) PRIMARY KEY,
		username NVARCHAR(255) UNIQUE NOT NULL,
		email NVARCHAR(255) UNIQUE NOT NULL,
		password NVARCHAR(255) NOT NULL,
		role NVARCHAR(50) NOT NULL DEFAULT 'staff',
		first_name NVARCHAR(255) NOT NULL,
		last_name NVARCHAR(255) NOT NULL,
		active BIT DEFAULT 1,
		failed_login_attempts INT DEFAULT 0,
		locked_until DATETIME2 NULL,
		created_at DATETIME2 DEFAULT GETDATE(),
		updated_at DATETIME2 DEFAULT GETDATE()
	)`},
	{"tickets", `IF NOT EXISTS (SELECT * FROM sysobjects WHERE name='tickets' AND xtype='U')
	CREATE TABLE tickets (
		id INT IDENTITY(1,1) PRIMARY KEY,
		title NVARCHAR(500) NOT NULL,
		description NVARCHAR(MAX) NOT NULL,
		submitter_name NVARCHAR(255) NOT NULL,
		submitter_email NVARCHAR(255) NOT NULL,
		priority NVARCHAR(50) NOT NULL DEFAULT 'medium',
		category NVARCHAR(100) NOT NULL,
		status NVARCHAR(50) NOT NULL DEFAULT 'open',
		assigned_to INT NULL,
		created_at DATETIME2 DEFAULT GETDATE(),
		updated_at DATETIME2 DEFAULT GETDATE(),
		FOREIGN KEY (assigned_to) REFERENCES users (id)
	)`},
	{"ticket_comments", `IF NOT EXISTS (SELECT * FROM sysobjects WHERE name='ticket_comments' AND xtype='U')
	CREATE TABLE ticket_comments (
		id INT IDENTITY(1,1) PRIMARY KEY,
		ticket_id INT NOT NULL,
		user_id INT NOT NULL,
		comment NVARCHAR(MAX) NOT NULL,
		created_at DATETIME2 DEFAULT GETDATE(),
		FOREIGN KEY (ticket_id) REFERENCES tickets (id) ON DELETE CASCADE,
		FOREIGN KEY (user_id) REFERENCES users (id)
	)`},
	{"idx_tickets_status", `IF NOT EXISTS (SELECT * FROM sys.indexes WHERE name='idx_tickets_status')
	CREATE INDEX idx_tickets_status ON tickets (status)`},
	{"idx_tickets_assigned_to", `IF NOT EXISTS (SELECT * FROM sys.indexes WHERE name='idx_tickets_assigned_to')
	CREATE INDEX idx_tickets_assigned_to ON tickets (assigned_to)`},
	{"idx_ticket_comments_ticket_id", `IF NOT EXISTS (SELECT * FROM sys.indexes WHERE name='idx_ticket_comments_ticket_id')
	CREATE INDEX idx_ticket_comments_ticket_id ON ticket_comments (ticket_id)`},
}

// MySQL has no CREATE INDEX IF NOT EXISTS, so indexes are declared inline.
var mysqlDDL = []Statement{
	{"users", `CREATE TABLE IF NOT EXISTS users (
		id INT AUTO_INCREMENT PRIMARY KEY,
		username VARCHAR(255) UNIQUE NOT NULL,
		email VARCHAR(255) UNIQUE NOT NULL,
		password VARCHAR(255) NOT NULL,
		role VARCHAR(50) NOT NULL DEFAULT 'staff',
		first_name VARCHAR(255) NOT NULL,
		last_name VARCHAR(255) NOT NULL,
		active TINYINT(1) DEFAULT 1,
		failed_login_attempts INT DEFAULT 0,
		locked_until DATETIME NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
	{"tickets", `CREATE TABLE IF NOT EXISTS tickets (
		id INT AUTO_INCREMENT PRIMARY KEY,
		title VARCHAR(500) NOT NULL,
		description TEXT NOT NULL,
		submitter_name VARCHAR(255) NOT NULL,
		submitter_email VARCHAR(255) NOT NULL,
		priority VARCHAR(50) NOT NULL DEFAULT 'medium',
		category VARCHAR(100) NOT NULL,
		status VARCHAR(50) NOT NULL DEFAULT 'open',
		assigned_to INT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		INDEX idx_tickets_status (status),
		INDEX idx_tickets_assigned_to (assigned_to),
		FOREIGN KEY (assigned_to) REFERENCES users (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
	{"ticket_comments", `CREATE TABLE IF NOT EXISTS ticket_comments (
		id INT AUTO_INCREMENT PRIMARY KEY,
		ticket_id INT NOT NULL,
		user_id INT NOT NULL,
		comment TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		INDEX idx_ticket_comments_ticket_id (ticket_id),
		FOREIGN KEY (ticket_id) REFERENCES tickets (id) ON DELETE CASCADE,
		FOREIGN KEY (user_id) REFERENCES users (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
}
