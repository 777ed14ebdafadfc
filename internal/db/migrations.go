package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		email VARCHAR(120) NOT NULL,
		password_hash VARCHAR(256) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_users_email ON users (email);`,
	`CREATE TABLE IF NOT EXISTS pedidos (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id),
		cliente_nome VARCHAR(150) NOT NULL,
		data_evento VARCHAR(10) NOT NULL,
		data_retirada VARCHAR(10) NOT NULL,
		horario_retirada VARCHAR(5) NOT NULL,
		tipo_pedido VARCHAR(100) NOT NULL,
		quantidade INTEGER NOT NULL,
		sabores TEXT NOT NULL DEFAULT '',
		tipo_embalagem VARCHAR(100) NOT NULL DEFAULT '',
		observacoes TEXT NOT NULL DEFAULT '',
		status VARCHAR(50) NOT NULL DEFAULT 'pendente',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM information_schema.columns WHERE table_name = 'pedidos' AND column_name = 'cliente_rg') THEN
			ALTER TABLE pedidos ADD COLUMN cliente_rg VARCHAR(20) NOT NULL DEFAULT '';
		END IF;
		IF NOT EXISTS (SELECT 1 FROM information_schema.columns WHERE table_name = 'pedidos' AND column_name = 'cliente_cpf') THEN
			ALTER TABLE pedidos ADD COLUMN cliente_cpf VARCHAR(20) NOT NULL DEFAULT '';
		END IF;
		IF NOT EXISTS (SELECT 1 FROM information_schema.columns WHERE table_name = 'pedidos' AND column_name = 'nome_contratado') THEN
			ALTER TABLE pedidos ADD COLUMN nome_contratado VARCHAR(150) NOT NULL DEFAULT '';
		END IF;
		IF NOT EXISTS (SELECT 1 FROM information_schema.columns WHERE table_name = 'pedidos' AND column_name = 'cnpj_contratado') THEN
			ALTER TABLE pedidos ADD COLUMN cnpj_contratado VARCHAR(20) NOT NULL DEFAULT '';
		END IF;
		IF NOT EXISTS (SELECT 1 FROM information_schema.columns WHERE table_name = 'pedidos' AND column_name = 'valor_total_pedido_contrato') THEN
			ALTER TABLE pedidos ADD COLUMN valor_total_pedido_contrato VARCHAR(50) NOT NULL DEFAULT '';
		END IF;
		IF NOT EXISTS (SELECT 1 FROM information_schema.columns WHERE table_name = 'pedidos' AND column_name = 'data_pagamento_contrato') THEN
			ALTER TABLE pedidos ADD COLUMN data_pagamento_contrato VARCHAR(10) NOT NULL DEFAULT '';
		END IF;
		IF NOT EXISTS (SELECT 1 FROM information_schema.columns WHERE table_name = 'pedidos' AND column_name = 'local_evento') THEN
			ALTER TABLE pedidos ADD COLUMN local_evento VARCHAR(200) NOT NULL DEFAULT '';
		END IF;
		IF NOT EXISTS (SELECT 1 FROM information_schema.columns WHERE table_name = 'pedidos' AND column_name = 'produtos_contratados_json') THEN
			ALTER TABLE pedidos ADD COLUMN produtos_contratados_json TEXT NOT NULL DEFAULT '[]';
		END IF;
	END
	$$;`,
	`CREATE INDEX IF NOT EXISTS idx_pedidos_user_id ON pedidos (user_id);`,
	`CREATE INDEX IF NOT EXISTS idx_pedidos_status ON pedidos (status);`,
	`CREATE INDEX IF NOT EXISTS idx_pedidos_created_at ON pedidos (created_at DESC);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
