// StreamerData - Streaming Platform Analytics and Reporting API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamerdata

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Channel types accepted by the store.
const (
	ChannelTypePublic  = "publico"
	ChannelTypePrivate = "privado"
	ChannelTypeMixed   = "misto"
)

// Donation statuses. Only read and received donations count as revenue.
const (
	DonationStatusRead     = "lido"
	DonationStatusReceived = "recebido"
	DonationStatusRejected = "recusado"
)

// Platform is a streaming platform. Nro is its primary key.
type Platform struct {
	Nro          int64     `json:"nro"`
	Nome         string    `json:"nome"`
	EmpresaFund  int64     `json:"empresa_fund"`
	EmpresaRespo int64     `json:"empresa_respo"`
	DataFund     time.Time `json:"data_fund"`
}

// PlatformInput is the full-record payload for platform create and update.
type PlatformInput struct {
	Nome         string `json:"nome" validate:"required,max=255"`
	EmpresaFund  int64  `json:"empresa_fund" validate:"required,gt=0"`
	EmpresaRespo int64  `json:"empresa_respo" validate:"required,gt=0"`
	DataFund     string `json:"data_fund" validate:"required,isodate"`
}

// PlatformDetail is a platform with the channels hosted on it.
type PlatformDetail struct {
	Platform
	Channels []Channel `json:"channels"`
}

// User is a platform account; it may stream (own channels) and donate.
type User struct {
	ID        int64     `json:"id"`
	Nick      string    `json:"nick"`
	Email     string    `json:"email"`
	DataNasc  time.Time `json:"data_nasc"`
	Telefone  *string   `json:"telefone"`
	EndPostal *string   `json:"end_postal"`
	IDPais    int64     `json:"id_pais"`
}

// UserInput is the full-record payload for user create and update.
type UserInput struct {
	Nick      string `json:"nick" validate:"required,max=255"`
	Email     string `json:"email" validate:"required,email"`
	DataNasc  string `json:"data_nasc" validate:"required,isodate"`
	Telefone  string `json:"telefone" validate:"max=64"`
	EndPostal string `json:"end_postal" validate:"max=255"`
	IDPais    int64  `json:"id_pais" validate:"required,gt=0"`
}

// UserDetail is a user with owned channels and their most valuable donations.
type UserDetail struct {
	User
	Channels  []Channel  `json:"channels"`
	Donations []Donation `json:"donations"`
}

// Channel belongs to exactly one streamer and one platform.
// StreamerNick and PlatformName are filled only by listing and detail reads.
type Channel struct {
	ID               int64     `json:"id"`
	Nome             string    `json:"nome"`
	Tipo             string    `json:"tipo"`
	Data             time.Time `json:"data"`
	Descricao        *string   `json:"descricao"`
	QtdVisualizacoes int64     `json:"qtd_visualizacoes"`
	IDStreamer       int64     `json:"id_streamer"`
	NroPlataforma    int64     `json:"nro_plataforma"`
	StreamerNick     string    `json:"streamer_nick,omitempty"`
	PlatformName     string    `json:"platform_name,omitempty"`
}

// ChannelInput is the full-record payload for channel create and update.
// The view counter is maintained by the store and is not writable.
type ChannelInput struct {
	Nome          string  `json:"nome" validate:"required,max=255"`
	Tipo          string  `json:"tipo" validate:"required,oneof=publico privado misto"`
	Data          string  `json:"data" validate:"required,isodate"`
	Descricao     *string `json:"descricao"`
	IDStreamer    int64   `json:"id_streamer" validate:"required,gt=0"`
	NroPlataforma int64   `json:"nro_plataforma" validate:"required,gt=0"`
}

// ChannelDetail is a channel with its videos, newest first.
type ChannelDetail struct {
	Channel
	Videos []Video `json:"videos"`
}

// Video is identified by (IDCanal, IDVideo); IDVideo is unique only within its channel.
type Video struct {
	IDVideo   int64     `json:"id_video"`
	IDCanal   int64     `json:"id_canal"`
	Titulo    string    `json:"titulo"`
	Datah     time.Time `json:"datah"`
	Tema      *string   `json:"tema"`
	Duracao   int64     `json:"duracao"`
	VisuSimul int64     `json:"visu_simul"`
	VisuTotal int64     `json:"visu_total"`
	CanalNome string    `json:"canal_nome,omitempty"`
}

// VideoInput is the full-record payload for video create and update.
// IDCanal selects the allocation scope on create and is ignored on update.
type VideoInput struct {
	IDCanal   int64   `json:"id_canal" validate:"required,gt=0"`
	Titulo    string  `json:"titulo" validate:"required,max=255"`
	Datah     string  `json:"datah" validate:"required,isodatetime"`
	Tema      *string `json:"tema"`
	Duracao   int64   `json:"duracao" validate:"gte=0"`
	VisuSimul int64   `json:"visu_simul" validate:"gte=0"`
	VisuTotal int64   `json:"visu_total" validate:"gte=0"`
}

// VideoDetail is a video with its donations and donor nicknames.
type VideoDetail struct {
	Video
	Donations []Donation `json:"donations"`
}

// DonationKey is the five-column identity of a donation. The first four
// columns identify the comment the donation was attached to.
type DonationKey struct {
	IDVideo       int64 `json:"id_video"`
	IDCanal       int64 `json:"id_canal"`
	IDUsuario     int64 `json:"id_usuario"`
	SeqComentario int64 `json:"seq_comentario"`
	SeqPg         int64 `json:"seq_pg"`
}

// Donation has no timestamp of its own; its date is the date of the
// comment sharing its first four key columns.
type Donation struct {
	DonationKey
	Valor       decimal.Decimal `json:"valor"`
	Status      string          `json:"status"`
	Nick        string          `json:"nick,omitempty"`
	VideoTitulo string          `json:"video_titulo,omitempty"`
}

// DonationInput is the payload for donation create. SeqPg is allocated
// within the comment scope when omitted.
type DonationInput struct {
	IDVideo       int64           `json:"id_video" validate:"required,gt=0"`
	IDCanal       int64           `json:"id_canal" validate:"required,gt=0"`
	IDUsuario     int64           `json:"id_usuario" validate:"required,gt=0"`
	SeqComentario int64           `json:"seq_comentario" validate:"required,gt=0"`
	SeqPg         *int64          `json:"seq_pg" validate:"omitempty,gt=0"`
	Valor         decimal.Decimal `json:"valor" validate:"gt=0"`
	Status        string          `json:"status" validate:"required,oneof=lido recebido recusado"`
}

// DonationUpdate is the mutable part of a donation.
type DonationUpdate struct {
	Valor  decimal.Decimal `json:"valor" validate:"gt=0"`
	Status string          `json:"status" validate:"required,oneof=lido recebido recusado"`
}

// Company is a lookup row used by platform forms.
type Company struct {
	Nro  int64  `json:"nro"`
	Nome string `json:"nome"`
}

// Country is a lookup row used by user forms.
type Country struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
}
