/*
tables.go declares and initializes every precomputed lookup table the move
generator depends on: file/rank masks, leaper attack tables, magic-bitboard
sliding attack tables, the between/line ray tables used by the pin-and-check
analyzer, castling blocker masks, and the Zobrist key tables. Everything here
is generated once at package init and is read-only thereafter.
*/

package chego

import "math/rand/v2"

// File and rank masks.
const (
	fileA uint64 = 0x0101010101010101
	fileH uint64 = 0x8080808080808080
	rank1 uint64 = 0x00000000000000FF
	rank2 uint64 = 0x000000000000FF00
	rank4 uint64 = 0x00000000FF000000
	rank5 uint64 = 0x000000FF00000000
	rank7 uint64 = 0x00FF000000000000
	rank8 uint64 = 0xFF00000000000000

	notAFile uint64 = ^fileA
	notHFile uint64 = ^fileH
	not1Rank uint64 = ^rank1
	not8Rank uint64 = ^rank8
)

// bitScanLookup is indexed by a De Bruijn hash of an isolated LSB to recover
// its square index.
//
// See http://pradu.us/old/Nov27_2008/Buzz/research/magic/Bitboards.pdf section 3.2.
var bitScanLookup = [64]int{
	63, 0, 58, 1, 59, 47, 53, 2,
	60, 39, 48, 27, 54, 33, 42, 3,
	61, 51, 37, 40, 49, 18, 28, 20,
	55, 30, 34, 11, 43, 14, 22, 4,
	62, 57, 46, 52, 38, 26, 32, 41,
	50, 36, 17, 19, 29, 10, 13, 21,
	56, 45, 25, 31, 35, 16, 9, 12,
	44, 24, 15, 8, 23, 7, 6, 5,
}

// genPawnAttacks returns the attack set of every pawn in pawns, for the given
// color. Used to fill pawnAttacks at init time and by dangerMap to build the
// opponent's pawn attacks in one step.
func genPawnAttacks(pawns uint64, c Color) uint64 {
	if c == ColorWhite {
		return (pawns & notAFile << 7) | (pawns & notHFile << 9)
	}
	return (pawns & notAFile >> 9) | (pawns & notHFile >> 7)
}

func genKnightAttacks(knight uint64) uint64 {
	return (knight&notAFile)>>17 | (knight&notHFile)>>15 |
		(knight&^(fileA|fileA<<1))>>10 | (knight&^(fileH|fileH>>1))>>6 |
		(knight&^(fileA|fileA<<1))<<6 | (knight&^(fileH|fileH>>1))<<10 |
		(knight&notAFile)<<15 | (knight&notHFile)<<17
}

func genKingAttacks(king uint64) uint64 {
	return (king&notAFile)>>9 | king>>8 | (king&notHFile)>>7 |
		(king&notAFile)>>1 | (king&notHFile)<<1 |
		(king&notAFile)<<7 | king<<8 | (king&notHFile)<<9
}

// genBishopAttacks walks all four diagonals from a single bishop square,
// stopping (inclusive) at the first blocker in occupancy.
func genBishopAttacks(bishop, occupancy uint64) (attacks uint64) {
	for i := bishop & notAFile >> 9; i != 0; i = i & notAFile >> 9 {
		attacks |= i
		if i&occupancy != 0 {
			break
		}
	}
	for i := bishop & notHFile >> 7; i != 0; i = i & notHFile >> 7 {
		attacks |= i
		if i&occupancy != 0 {
			break
		}
	}
	for i := bishop & notAFile << 7; i != 0; i = i & notAFile << 7 {
		attacks |= i
		if i&occupancy != 0 {
			break
		}
	}
	for i := bishop & notHFile << 9; i != 0; i = i & notHFile << 9 {
		attacks |= i
		if i&occupancy != 0 {
			break
		}
	}
	return attacks
}

func genRookAttacks(rook, occupancy uint64) (attacks uint64) {
	for i := rook & notAFile >> 1; i != 0; i = i & notAFile >> 1 {
		attacks |= i
		if i&occupancy != 0 {
			break
		}
	}
	for i := rook & notHFile << 1; i != 0; i = i & notHFile << 1 {
		attacks |= i
		if i&occupancy != 0 {
			break
		}
	}
	for i := rook & not1Rank >> 8; i != 0; i = i & not1Rank >> 8 {
		attacks |= i
		if i&occupancy != 0 {
			break
		}
	}
	for i := rook & not8Rank << 8; i != 0; i = i & not8Rank << 8 {
		attacks |= i
		if i&occupancy != 0 {
			break
		}
	}
	return attacks
}

func initBishopOccupancy() (result [64]uint64) {
	const notANot1 = notAFile & not1Rank
	const notHNot1 = notHFile & not1Rank
	const notANot8 = notAFile & not8Rank
	const notHNot8 = notHFile & not8Rank

	for square := range 64 {
		bishop := uint64(1) << square
		var occ uint64
		for i := bishop & notAFile >> 9; i&notANot1 != 0; i >>= 9 {
			occ |= i
		}
		for i := bishop & notHFile >> 7; i&notHNot1 != 0; i >>= 7 {
			occ |= i
		}
		for i := bishop & notAFile << 7; i&notANot8 != 0; i <<= 7 {
			occ |= i
		}
		for i := bishop & notHFile << 9; i&notHNot8 != 0; i <<= 9 {
			occ |= i
		}
		result[square] = occ
	}
	return result
}

func initRookOccupancy() (result [64]uint64) {
	for square := range 64 {
		rook := uint64(1) << square
		var occ uint64
		for i := rook & not1Rank >> 8; i&not1Rank != 0; i >>= 8 {
			occ |= i
		}
		for i := rook & notAFile >> 1; i&notAFile != 0; i >>= 1 {
			occ |= i
		}
		for i := rook & notHFile << 1; i&notHFile != 0; i <<= 1 {
			occ |= i
		}
		for i := rook & not8Rank << 8; i&not8Rank != 0; i <<= 8 {
			occ |= i
		}
		result[square] = occ
	}
	return result
}

// genOccupancy returns one specific blocker configuration (selected by key)
// out of the 2^relevantBitCount subsets of relevantOccupancy.
func genOccupancy(key, relevantBitCount int, relevantOccupancy uint64) (occupancy uint64) {
	for i := range relevantBitCount {
		square := popLSB(&relevantOccupancy)
		if key&(1<<i) != 0 {
			occupancy |= uint64(1) << square
		}
	}
	return occupancy
}

func initBishopAttacks() (attacks [64][512]uint64) {
	for i := range 64 {
		bitCount := bishopBitCount[i]
		for j := range 1 << bitCount {
			occupancy := genOccupancy(j, bitCount, bishopOccupancy[i])
			key := occupancy * bishopMagicNumbers[i] >> (64 - bitCount)
			attacks[i][key] = genBishopAttacks(1<<i, occupancy)
		}
	}
	return attacks
}

func initRookAttacks() (attacks [64][4096]uint64) {
	for i := range 64 {
		bitCount := rookBitCount[i]
		for j := range 1 << bitCount {
			occupancy := genOccupancy(j, bitCount, rookOccupancy[i])
			key := occupancy * rookMagicNumbers[i] >> (64 - bitCount)
			attacks[i][key] = genRookAttacks(1<<i, occupancy)
		}
	}
	return attacks
}

// lookupBishopAttacks resolves a bishop's attack set for the given occupancy
// via the magic-bitboard hashing scheme.
func lookupBishopAttacks(square int, occupancy uint64) uint64 {
	occupancy &= bishopOccupancy[square]
	occupancy *= bishopMagicNumbers[square]
	occupancy >>= 64 - bishopBitCount[square]
	return bishopAttacks[square][occupancy]
}

func lookupRookAttacks(square int, occupancy uint64) uint64 {
	occupancy &= rookOccupancy[square]
	occupancy *= rookMagicNumbers[square]
	occupancy >>= 64 - rookBitCount[square]
	return rookAttacks[square][occupancy]
}

func lookupQueenAttacks(square int, occupancy uint64) uint64 {
	return lookupBishopAttacks(square, occupancy) | lookupRookAttacks(square, occupancy)
}

// initBetweenAndLines builds, for every pair of squares, the ray strictly
// between them (betweenMask) and the full rank/file/diagonal line through
// both (lineMask), whenever the pair is co-linear; both are zero otherwise.
func initBetweenAndLines() (between, line [64][64]uint64) {
	for a := range 64 {
		for b := range 64 {
			if a == b {
				continue
			}
			fa, ra := a%8, a/8
			fb, rb := b%8, b/8

			sameRank := ra == rb
			sameFile := fa == fb
			sameDiag := fa-ra == fb-rb
			sameAntiDiag := fa+ra == fb+rb

			if !sameRank && !sameFile && !sameDiag && !sameAntiDiag {
				continue
			}

			df, dr := sign(fb-fa), sign(rb-ra)
			var b2 uint64
			for sq := a + dr*8 + df; sq != b; sq += dr*8 + df {
				b2 |= uint64(1) << sq
			}
			between[a][b] = b2

			var l uint64
			for f, r := fa, ra; f >= 0 && f < 8 && r >= 0 && r < 8; f, r = f-df, r-dr {
				l |= uint64(1) << (r*8 + f)
			}
			for f, r := fa+df, ra+dr; f >= 0 && f < 8 && r >= 0 && r < 8; f, r = f+df, r+dr {
				l |= uint64(1) << (r*8 + f)
			}
			line[a][b] = l
		}
	}
	return between, line
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// hvMask/d12Mask are the orthogonal/diagonal rays emanating from a square,
// exclusive of the square itself -- i.e. line(sq, *) unioned over the
// relevant direction, restricted to squares actually reachable by a rook or
// bishop placed on an otherwise empty board.
func initRayMasks() (hv, d12, hv2, d12_ [64]uint64) {
	for sq := range 64 {
		hv[sq] = genRookAttacks(1<<sq, 0)
		d12[sq] = genBishopAttacks(1<<sq, 0)
		hv2[sq] = hv[sq] | uint64(1)<<sq
		d12_[sq] = d12[sq] | uint64(1)<<sq
	}
	return hv, d12, hv2, d12_
}

func initPieceKeys() (keys [2][6][64]uint64) {
	for c := range 2 {
		for p := range 6 {
			for sq := range 64 {
				keys[c][p][sq] = rand.Uint64()
			}
		}
	}
	return keys
}

func initSquareKeys() (keys [64]uint64) {
	for sq := range 64 {
		keys[sq] = rand.Uint64()
	}
	return keys
}

func initCastlingKeys() (keys [16]uint64) {
	for i := range 16 {
		keys[i] = rand.Uint64()
	}
	return keys
}

var (
	pawnAttacks   = [2][64]uint64{}
	knightAttacks [64]uint64
	kingAttacks   [64]uint64

	bishopOccupancy = initBishopOccupancy()
	rookOccupancy   = initRookOccupancy()
	bishopAttacks   = initBishopAttacks()
	rookAttacks     = initRookAttacks()

	betweenMask, lineMask             = initBetweenAndLines()
	hvMask, d12Mask, hvMask2, d12Mask2 = initRayMasks()

	pieceKeys    = initPieceKeys()
	epKeys       = initSquareKeys()
	castlingKeys = initCastlingKeys()
	sideKey      = rand.Uint64()
)

func init() {
	for sq := range 64 {
		bb := uint64(1) << sq
		pawnAttacks[ColorWhite][sq] = genPawnAttacks(bb, ColorWhite)
		pawnAttacks[ColorBlack][sq] = genPawnAttacks(bb, ColorBlack)
		knightAttacks[sq] = genKnightAttacks(bb)
		kingAttacks[sq] = genKingAttacks(bb)
	}
}

// bishopBitCount/rookBitCount record, for each square, the number of
// "relevant occupancy" bits that feed the magic multiplication.
var bishopBitCount = [64]int{
	6, 5, 5, 5, 5, 5, 5, 6,
	5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 7, 7, 7, 7, 5, 5,
	5, 5, 7, 9, 9, 7, 5, 5,
	5, 5, 7, 9, 9, 7, 5, 5,
	5, 5, 7, 7, 7, 7, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5,
	6, 5, 5, 5, 5, 5, 5, 6,
}

var rookBitCount = [64]int{
	12, 11, 11, 11, 11, 11, 11, 12,
	11, 10, 10, 10, 10, 10, 10, 11,
	11, 10, 10, 10, 10, 10, 10, 11,
	11, 10, 10, 10, 10, 10, 10, 11,
	11, 10, 10, 10, 10, 10, 10, 11,
	11, 10, 10, 10, 10, 10, 10, 11,
	11, 10, 10, 10, 10, 10, 10, 11,
	12, 11, 11, 11, 11, 11, 11, 12,
}

// bishopMagicNumbers/rookMagicNumbers are precalculated so the magic
// multiplication hashes every relevant occupancy subset to a distinct index.
var bishopMagicNumbers = [64]uint64{
	0x11410121040100, 0x2084820928010, 0xa010208481080040, 0x214240082000610,
	0x4d104000400480, 0x1012010804408, 0x42044101452000c, 0x2844804050104880,
	0x814204290a0a00, 0x10280688224500, 0x1080410101010084, 0x10020a108408004,
	0x2482020210c80080, 0x480104a0040400, 0x411006404200810, 0x1024010908024292,
	0x1004401001011a, 0x810006081220080, 0x1040404206004100, 0x58080000820041ce,
	0x3406000422010890, 0x1a004100520210, 0x202a000048040400, 0x225004441180110,
	0x8064240102240, 0x1424200404010402, 0x1041100041024200, 0x8082002012008200,
	0x1010008104000, 0x8808004000806000, 0x380a000080c400, 0x31040100042d0101,
	0x110109008082220, 0x4010880204201, 0x4006462082100300, 0x4002010040140041,
	0x40090200250880, 0x2010100c40c08040, 0x12800ac01910104, 0x10b20051020100,
	0x210894104828c000, 0x50440220004800, 0x1002011044180800, 0x4220404010410204,
	0x1002204a2020401, 0x21021001000210, 0x4880081009402, 0xc208088c088e0040,
	0x4188464200080, 0x3810440618022200, 0xc020310401040420, 0x2000008208800e0,
	0x4c910240020, 0x425100a8602a0, 0x20c4206a0c030510, 0x4c10010801184000,
	0x200202020a026200, 0x6000004400841080, 0xc14004121082200, 0x400324804208800,
	0x1802200040504100, 0x1820000848488820, 0x8620682a908400, 0x8010600084204240,
}

var rookMagicNumbers = [64]uint64{
	0x2080008040002010, 0x40200010004000, 0x100090010200040, 0x2080080010000480,
	0x880040080080102, 0x8200106200042108, 0x410041000408b200, 0x100009a00402100,
	0x5800800020804000, 0x848404010002000, 0x101001820010041, 0x10a0040100420080,
	0x8a02002006001008, 0x926000844110200, 0x8000800200800100, 0x28060001008c2042,
	0x10818002204000, 0x10004020004001, 0x110002008002400, 0x11a020010082040,
	0x2001010008000410, 0x42010100080400, 0x4004040008020110, 0x820000840041,
	0x400080208000, 0x2080200040005000, 0x8000200080100080, 0x4400080180500080,
	0x4900080080040080, 0x4004004480020080, 0x8006000200040108, 0xc481000100006396,
	0x1000400080800020, 0x201004400040, 0x10008010802000, 0x204012000a00,
	0x800400800802, 0x284000200800480, 0x3000403000200, 0x840a6000514,
	0x4080c000228012, 0x10002000444010, 0x620001000808020, 0xc210010010009,
	0x100c001008010100, 0xc10020004008080, 0x20100802040001, 0x808008305420014,
	0xc010800840043080, 0x208401020890100, 0x10b0081020028280, 0x6087001001220900,
	0xc080011000500, 0x9810200040080, 0x2000010882100400, 0x2000050880540200,
	0x800020104200810a, 0x6220250242008016, 0x9180402202900a, 0x40210500100009,
	0x6000814102026, 0x410100080a040013, 0x10405008022d1184, 0x1000009400410822,
}

// Castling geometry. Index: 0 = white short, 1 = white long, 2 = black short,
// 3 = black long.

// castlingKingTarget is the king's destination square for each castling kind.
var castlingKingTarget = [4]int{SG1, SC1, SG8, SC8}

// castlingRookSquares holds {from, to} for the rook that moves alongside the
// king.
var castlingRookSquares = [4][2]int{
	{SH1, SF1}, {SA1, SD1}, {SH8, SF8}, {SA8, SD8},
}

// castlingEmptyMask is the set of squares that must be empty (between king
// and rook) for the castling move to be physically possible. Short castling:
// f,g files; long castling: b,c,d files.
var castlingEmptyMask = [4]uint64{
	sqBB(SF1) | sqBB(SG1),
	sqBB(SB1) | sqBB(SC1) | sqBB(SD1),
	sqBB(SF8) | sqBB(SG8),
	sqBB(SB8) | sqBB(SC8) | sqBB(SD8),
}

// castlingSafeMask is the subset of squares (including the king's own
// square) that must be unattacked for castling to be legal. Short castling
// requires the king's path safe (e,f,g); long castling only requires c,d,e
// safe -- the b-file square need only be empty, never safe.
var castlingSafeMask = [4]uint64{
	sqBB(SE1) | sqBB(SF1) | sqBB(SG1),
	sqBB(SC1) | sqBB(SD1) | sqBB(SE1),
	sqBB(SE8) | sqBB(SF8) | sqBB(SG8),
	sqBB(SC8) | sqBB(SD8) | sqBB(SE8),
}

func sqBB(sq int) uint64 { return uint64(1) << sq }
